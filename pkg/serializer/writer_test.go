package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type testResult struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := testResult{Name: "new_version", Value: 123}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testResult
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testResult{Name: "new_version", Value: 456}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testResult
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeText(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatText, &buf)

	if err := writer.Serialize(context.Background(), "0.4.0"); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if got := buf.String(); got != "0.4.0\n" {
		t.Errorf("text output = %q, want %q", got, "0.4.0\n")
	}
}

func TestWriter_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(context.Background(), "1.0.0"); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if got := buf.String(); got != "1.0.0\n" {
		t.Errorf("output = %q, want plain text fallback", got)
	}
}

func TestFormatIsUnknown(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatText} {
		if f.IsUnknown() {
			t.Errorf("%s reported unknown", f)
		}
	}
	if !Format("csv").IsUnknown() {
		t.Error("csv not reported unknown")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := NewFileWriterOrStdout(FormatText, path)

	if err := w.Serialize(context.Background(), "2.0.0"); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "2.0.0\n" {
		t.Errorf("file content = %q, want %q", string(data), "2.0.0\n")
	}
}

func TestNewFileWriterOrStdout_EmptyPathUsesStdout(t *testing.T) {
	w := NewFileWriterOrStdout(FormatText, "")
	if w.output != os.Stdout {
		t.Error("empty path did not fall back to stdout")
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close on stdout writer failed: %v", err)
	}
}
