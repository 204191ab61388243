package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.go")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestPackageDocLineComments(t *testing.T) {
	path := writeSource(t, `// Package demo is a small demonstration.
//
// It exists so the extractor has something to chew on.
package demo
`)

	got, err := PackageDoc(path)
	if err != nil {
		t.Fatalf("PackageDoc() error = %v", err)
	}
	want := "Package demo is a small demonstration.\n\nIt exists so the extractor has something to chew on.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PackageDoc() mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageDocBlockComment(t *testing.T) {
	path := writeSource(t, `/*
Package demo uses a block comment.

	code := "indented"

Done.
*/
package demo
`)

	got, err := PackageDoc(path)
	if err != nil {
		t.Fatalf("PackageDoc() error = %v", err)
	}
	want := "Package demo uses a block comment.\n\n\tcode := \"indented\"\n\nDone.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PackageDoc() mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageDocMainPackage(t *testing.T) {
	path := writeSource(t, `// Command demo prints things.
package main

func main() {}
`)

	got, err := PackageDoc(path)
	if err != nil {
		t.Fatalf("PackageDoc() error = %v", err)
	}
	if diff := cmp.Diff("Command demo prints things.\n", got); diff != "" {
		t.Errorf("PackageDoc() mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageDocMissing(t *testing.T) {
	path := writeSource(t, "package demo\n")

	_, err := PackageDoc(path)

	var noDoc *NoDocError
	if !errors.As(err, &noDoc) {
		t.Fatalf("PackageDoc() error = %v, want *NoDocError", err)
	}
	if noDoc.Path != path {
		t.Errorf("NoDocError.Path = %s, want %s", noDoc.Path, path)
	}
}

func TestPackageDocUnparsableFile(t *testing.T) {
	path := writeSource(t, "this is not go\n")
	if _, err := PackageDoc(path); err == nil {
		t.Fatal("PackageDoc() error = nil, want parse error")
	}
}
