// Package scaffold writes generated project and component files from
// the embedded templates.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-slate/slate/cmd/slate/internal/templates"
)

// ProjectData is the substitution data for a new project.
type ProjectData struct {
	ModulePath string
	AppName    string
}

// projectFiles maps embedded templates to their destination names.
var projectFiles = []struct {
	templatePath string
	destName     string
}{
	{"init/go.mod.tmpl", "go.mod"},
	{"init/main.go.tmpl", "main.go"},
	{"init/slate.yaml.tmpl", "slate.yaml"},
}

// Project writes a new project into dir, which must not exist yet.
func Project(dir string, data ProjectData) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	for _, f := range projectFiles {
		content, err := templates.Process(f.templatePath, data)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", f.templatePath, err)
		}
		destPath := filepath.Join(dir, f.destName)
		if err := os.WriteFile(destPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.destName, err)
		}
	}
	return nil
}

// ComponentData is the substitution data for a controller/view pair.
type ComponentData struct {
	Package        string
	Name           string
	TypeName       string
	ControllerName string
	ViewName       string
}

// NewComponentData derives the generated type names for a component.
// The name must be a valid Go identifier; it is capitalized for the
// widget type and lowercased for the unexported controller and view.
func NewComponentData(pkg, name string) (ComponentData, error) {
	if !validIdentifier(name) {
		return ComponentData{}, fmt.Errorf("component name %q is not a valid Go identifier", name)
	}
	if !validIdentifier(pkg) {
		return ComponentData{}, fmt.Errorf("package name %q is not a valid Go identifier", pkg)
	}
	exported := strings.ToUpper(name[:1]) + name[1:]
	unexported := strings.ToLower(name[:1]) + name[1:]
	return ComponentData{
		Package:        pkg,
		Name:           exported,
		TypeName:       exported,
		ControllerName: unexported + "Controller",
		ViewName:       unexported + "View",
	}, nil
}

// Component writes a controller/view pair into dir and returns the
// created file path.
func Component(dir string, data ComponentData) (string, error) {
	content, err := templates.Process("component/component.go.tmpl", data)
	if err != nil {
		return "", fmt.Errorf("failed to render component: %w", err)
	}

	destPath := filepath.Join(dir, fileName(data.Name))
	if _, err := os.Stat(destPath); err == nil {
		return "", fmt.Errorf("file %q already exists", destPath)
	}
	if err := os.WriteFile(destPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return destPath, nil
}

// fileName converts a CamelCase component name to snake_case.go.
func fileName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String() + ".go"
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
