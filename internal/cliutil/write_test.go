package cliutil

import (
	"bytes"
	"io"
	"testing"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	if got := buf.String(); got != "Hello, World!" {
		t.Errorf("Writef() = %q, want %q", got, "Hello, World!")
	}
}

func TestWritef_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Simple message")
	if got := buf.String(); got != "Simple message" {
		t.Errorf("Writef() = %q, want %q", got, "Simple message")
	}
}

func TestWritef_MultipleArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	want := "Status: 42 items, true active"
	if got := buf.String(); got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (e errorWriter) Write(p []byte) (n int, err error) {
	return 0, &writeError{}
}

type writeError struct{}

func (e *writeError) Error() string {
	return "simulated write error"
}

func TestWritef_WriteError(t *testing.T) {
	// This test verifies that Writef handles write errors gracefully
	// by logging to stderr rather than panicking
	var ew errorWriter
	// Should not panic
	Writef(ew, "This will fail")
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		if err := ValidateOutputFormat(f); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v, want nil", f, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(\"xml\") = nil, want error")
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]any{"domain": "length", "m": 1000}

	var buf bytes.Buffer
	if err := OutputStructured(&buf, data, FormatJSON); err != nil {
		t.Fatalf("OutputStructured(json) error: %v", err)
	}
	want := "{\n  \"domain\": \"length\",\n  \"m\": 1000\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("OutputStructured(json) = %q, want %q", got, want)
	}

	buf.Reset()
	if err := OutputStructured(&buf, data, FormatYAML); err != nil {
		t.Fatalf("OutputStructured(yaml) error: %v", err)
	}
	if got := buf.String(); got != "domain: length\nm: 1000\n" {
		t.Errorf("OutputStructured(yaml) = %q", got)
	}

	if err := OutputStructured(&buf, data, FormatText); err == nil {
		t.Error("OutputStructured(text) = nil, want error")
	}
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	err := Output(&buf, FormatText, nil, func(w io.Writer) {
		Writef(w, "plain\n")
	})
	if err != nil || buf.String() != "plain\n" {
		t.Errorf("Output(text) = %q, %v", buf.String(), err)
	}

	buf.Reset()
	err = Output(&buf, FormatJSON, []int{1}, func(io.Writer) {
		t.Error("text renderer called for json output")
	})
	if err != nil || buf.String() != "[\n  1\n]\n" {
		t.Errorf("Output(json) = %q, %v", buf.String(), err)
	}
}
