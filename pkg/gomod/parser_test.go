package gomod

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindEnclosingModule(t *testing.T) {
	dir := t.TempDir()
	contents := "module github.com/acme/widget\n\ngo 1.25\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(contents), 0o644); err != nil {
		t.Fatalf("writing go.mod: %v", err)
	}

	sub := filepath.Join(dir, "internal", "calc")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("creating subdir: %v", err)
	}
	file := filepath.Join(sub, "calc_test.go")
	if err := os.WriteFile(file, []byte("package calc\n"), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	module, err := FindEnclosingModule(file)
	if err != nil {
		t.Fatalf("FindEnclosingModule: %v", err)
	}
	if module != "github.com/acme/widget" {
		t.Errorf("module = %q, want %q", module, "github.com/acme/widget")
	}
}

func TestFindEnclosingModule_NotInModule(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "loose.go")
	if err := os.WriteFile(file, []byte("package loose\n"), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	module, err := FindEnclosingModule(file)
	if err != nil {
		t.Fatalf("FindEnclosingModule: %v", err)
	}
	if module != "" {
		t.Errorf("module = %q, want empty for a file outside any module", module)
	}
}

func TestFindEnclosingModule_MissingModuleDirective(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("go 1.25\n"), 0o644); err != nil {
		t.Fatalf("writing go.mod: %v", err)
	}
	file := filepath.Join(dir, "calc.go")
	if err := os.WriteFile(file, []byte("package calc\n"), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	if _, err := FindEnclosingModule(file); err == nil {
		t.Fatal("expected an error for a go.mod without a module directive")
	}
}
