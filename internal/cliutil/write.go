// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to w as indented JSON or YAML.
func OutputStructured(w io.Writer, data any, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}

// Output writes data in format. Text output is produced by text; structured
// formats marshal data.
func Output(w io.Writer, format string, data any, text func(io.Writer)) error {
	if format == FormatText || format == "" {
		text(w)
		return nil
	}
	return OutputStructured(w, data, format)
}
