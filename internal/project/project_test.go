package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newModule(t *testing.T, modulePath string) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module "+modulePath+"\n\ngo 1.23\n")
	return root
}

func TestFindRootWalksUp(t *testing.T) {
	root := newModule(t, "example.com/demo")
	nested := filepath.Join(root, "internal", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot("", nested)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	resolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != resolved {
		t.Errorf("FindRoot() = %s, want %s", got, root)
	}
}

func TestFindRootExplicitMissing(t *testing.T) {
	_, err := FindRoot(filepath.Join(t.TempDir(), "nope"), "")
	if err == nil {
		t.Fatal("FindRoot() error = nil, want error for missing explicit root")
	}
}

func TestFindRootNoGoMod(t *testing.T) {
	// An isolated tree with no go.mod anywhere up to the filesystem root is
	// hard to fabricate, so only assert the explicit-path behavior plus the
	// error identity on an obviously module-less chroot-like dir.
	dir := t.TempDir()
	_, err := FindRoot("", dir)
	if err != nil && !errors.Is(err, ErrNoRoot) {
		t.Errorf("FindRoot() error = %v, want ErrNoRoot or nil (ancestor module)", err)
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		module string
		want   string
	}{
		{module: "example.com/owner/readmegen", want: "readmegen"},
		{module: "single", want: "single"},
	}
	for _, tc := range tests {
		root := newModule(t, tc.module)
		got, err := ModuleName(root)
		if err != nil {
			t.Fatalf("ModuleName() error = %v", err)
		}
		if got != tc.want {
			t.Errorf("ModuleName(%q) = %q, want %q", tc.module, got, tc.want)
		}
	}
}

func TestLoadConfigMissingFileIsZero(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(Config{}, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFile), `
name: fancy-name
version: 1.2.3
license: MIT
badges:
  - "[![CI](https://example.com/ci.svg)](https://example.com/ci)"
template: docs/README.tpl
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{
		Name:     "fancy-name",
		Version:  "1.2.3",
		License:  "MIT",
		Badges:   []string{"[![CI](https://example.com/ci.svg)](https://example.com/ci)"},
		Template: "docs/README.tpl",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ConfigFile), "name: [unclosed\n")
	if _, err := LoadConfig(root); err == nil {
		t.Fatal("LoadConfig() error = nil, want parse error")
	}
}

func TestLoadMetadataConfigWins(t *testing.T) {
	root := newModule(t, "example.com/derived-name")

	meta, err := LoadMetadata(root, Config{Name: "configured", License: "MIT"})
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if meta.Name != "configured" {
		t.Errorf("Name = %q, want %q", meta.Name, "configured")
	}
	if meta.License != "MIT" {
		t.Errorf("License = %q, want %q", meta.License, "MIT")
	}
}

func TestLoadMetadataDerivesName(t *testing.T) {
	root := newModule(t, "example.com/derived-name")
	meta, err := LoadMetadata(root, Config{})
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if meta.Name != "derived-name" {
		t.Errorf("Name = %q, want %q", meta.Name, "derived-name")
	}
}
