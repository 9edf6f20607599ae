package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/propforma/propforma/internal/branding"
	"github.com/propforma/propforma/internal/config"
	"github.com/propforma/propforma/internal/domain"
	"github.com/propforma/propforma/internal/logger"
	"github.com/propforma/propforma/internal/report"
)

// buildProvider picks the branding backend from process config: Redis when
// an address is configured, otherwise a local profile file, otherwise
// default branding for everyone. Every backend is wrapped in a TTL cache.
func buildProvider(cfg config.AppConfig) branding.Provider {
	var inner branding.Provider
	switch {
	case cfg.RedisAddr != "":
		inner = branding.NewRedisStore(cfg.RedisAddr)
	case cfg.BrandingFile != "":
		fs, err := branding.NewFileStore(cfg.BrandingFile)
		if err != nil {
			logger.L.Warn("branding file unavailable, using default branding", "path", cfg.BrandingFile, "error", err)
			inner = branding.Static(domain.DefaultBranding())
		} else {
			inner = fs
		}
	default:
		inner = branding.Static(domain.DefaultBranding())
	}
	return branding.NewCachedProvider(inner, cfg.BrandingTTL)
}

// prepareFromFile loads a request file and runs the derivation engine.
func prepareFromFile(cmd *cobra.Command, path string) (domain.Tool, domain.ReportPayload, error) {
	cfg := config.LoadAppConfig()
	logger.Init(cfg.LogLevel)

	parser := config.NewInputParser()
	req, err := parser.LoadFromFile(path)
	if err != nil {
		return "", nil, err
	}
	tool, err := domain.ParseTool(req.Tool)
	if err != nil {
		return "", nil, err
	}

	preparer := report.NewPreparer(buildProvider(cfg))
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		logger.Init("debug")
		preparer.SetLogger(slogAdapter{})
	}

	payload, err := preparer.Prepare(context.Background(), tool, req.Calculation, req.Property, req.User)
	if err != nil {
		return "", nil, err
	}
	return tool, payload, nil
}

var reportCmd = &cobra.Command{
	Use:   "report [request-file]",
	Short: "Generate a report from a request file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, payload, err := prepareFromFile(cmd, args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		f := report.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format %q (available: %v)", format, report.FormatterNames())
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			data, err := f.Format(tool, payload)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			logger.L.Info("report written", "tool", tool, "format", format, "file", out)
			return nil
		}

		filename, err := report.WriteFormatted(f, tool, payload, format)
		if err != nil {
			return err
		}
		logger.L.Info("report written", "tool", tool, "format", format, "file", filename)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [request-file]",
	Short: "Print a styled report summary to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tool, payload, err := prepareFromFile(cmd, args[0])
		if err != nil {
			return err
		}
		data, err := report.ConsoleFormatter{}.Format(tool, payload)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var brandingCmd = &cobra.Command{
	Use:   "branding [user-id]",
	Short: "Show the branding profile a report for this user would carry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadAppConfig()
		logger.Init(cfg.LogLevel)

		user := &domain.User{ID: args[0]}
		profile := branding.Resolve(context.Background(), buildProvider(cfg), user)
		fmt.Printf("Agent:     %s\n", profile.AgentName)
		fmt.Printf("Brokerage: %s\n", profile.BrokerageName)
		fmt.Printf("Plan:      %s\n", profile.Plan)
		if profile.Plan.Paid() {
			fmt.Printf("Colors:    %s / %s\n", profile.PrimaryColor, profile.AccentColor)
			fmt.Printf("Logo:      %s\n", profile.LogoURL)
		}
		return nil
	},
}
