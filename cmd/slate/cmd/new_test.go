package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGoMod(t *testing.T, dir, modulePath string) {
	t.Helper()
	content := "module " + modulePath + "\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunNewCreatesComponent(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	writeGoMod(t, dir, "github.com/someone/myapp")
	t.Chdir(dir)

	if err := runNew([]string{"component", "Settings"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "settings.go"))
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)
	for _, want := range []string{
		"package main",
		"type Settings struct",
		"settingsController",
		"settingsView",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated file missing %q", want)
		}
	}
}

func TestRunNewRejectsBadArgs(t *testing.T) {
	if err := runNew([]string{"component"}); err == nil {
		t.Error("missing name should error")
	}
	if err := runNew([]string{"widget", "Settings"}); err == nil {
		t.Error("unknown kind should error")
	}
}
