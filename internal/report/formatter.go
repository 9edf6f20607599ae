package report

import (
	"fmt"
	"os"
	"time"

	"github.com/propforma/propforma/internal/domain"
)

// Formatter renders a prepared payload into one output format.
type Formatter interface {
	Name() string
	Format(tool domain.Tool, payload domain.ReportPayload) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(tool domain.Tool, payload domain.ReportPayload) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(tool domain.Tool, payload domain.ReportPayload) ([]byte, error) {
	return f.F(tool, payload)
}

var formatters = []Formatter{
	HTMLFormatter{},
	JSONFormatter{},
	ConsoleFormatter{},
	PDFFormatter{},
}

// GetFormatterByName returns the registered formatter with the given name,
// or nil when there is none.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered output formats.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteFormatted runs a formatter and writes the result to a timestamped
// file, returning the filename.
func WriteFormatted(f Formatter, tool domain.Tool, payload domain.ReportPayload, ext string) (string, error) {
	data, err := f.Format(tool, payload)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("propforma_%s_%s.%s", tool, time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
