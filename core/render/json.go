// Package render provides output renderers for the audit report.
// JSON is the canonical format (the same object the HTTP API returns);
// Markdown and PDF are readable report layouts built on top of it.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/claritycompass/core"
)

// JSONRenderer produces the canonical JSON report.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the report with indentation.
func (r *JSONRenderer) Render(report *core.AuditReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
