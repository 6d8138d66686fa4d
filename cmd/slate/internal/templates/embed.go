// Package templates provides embedded template files for project and
// component generation.
package templates

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed init/* component/*
var FS embed.FS

// ReadFile reads a file from the embedded filesystem.
func ReadFile(path string) ([]byte, error) {
	return FS.ReadFile(path)
}

// Process renders an embedded template with the given data.
func Process(path string, data any) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(path).Parse(string(content))
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
