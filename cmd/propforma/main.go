package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/propforma/propforma/internal/config"
	"github.com/propforma/propforma/internal/logger"
	"github.com/propforma/propforma/internal/report"
)

// slogAdapter bridges the global structured logger into the preparer's
// tracing interface.
type slogAdapter struct{}

func (slogAdapter) Debugf(format string, args ...any) { logger.L.Debug(fmt.Sprintf(format, args...)) }
func (slogAdapter) Infof(format string, args ...any)  { logger.L.Info(fmt.Sprintf(format, args...)) }
func (slogAdapter) Warnf(format string, args ...any)  { logger.L.Warn(fmt.Sprintf(format, args...)) }
func (slogAdapter) Errorf(format string, args ...any) { logger.L.Error(fmt.Sprintf(format, args...)) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "propforma",
	Short: "Real-estate report generator CLI",
	Long:  "Prepares and renders branded reports for the propforma calculator suite",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "propforma %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [request-file]",
	Short: "Validate a report request file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("Request file %s is valid\n", args[0])
		return nil
	},
}

func main() {
	reportCmd.Flags().String("format", "html", fmt.Sprintf("Output format (%v)", report.FormatterNames()))
	reportCmd.Flags().String("out", "", "Write output to this file instead of a timestamped one")
	reportCmd.Flags().Bool("debug", false, "Enable debug tracing")
	previewCmd.Flags().Bool("debug", false, "Enable debug tracing")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(brandingCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
