package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Chooser picks one entrypoint from several candidates, typically by asking
// the user. Candidates are slash-separated paths relative to the project
// root. A nil Chooser makes multiple candidates a hard error.
type Chooser func(candidates []string) (string, error)

// MultipleBinariesError is returned when entrypoint resolution finds more
// than one candidate and no Chooser is available to break the tie.
type MultipleBinariesError struct {
	Candidates []string
}

func (e *MultipleBinariesError) Error() string {
	return fmt.Sprintf("multiple binaries found, choose one: [%s]", strings.Join(e.Candidates, ", "))
}

// NoEntrypointError is returned when nothing resembling a documentation
// entrypoint exists in the project.
type NoEntrypointError struct {
	Root string
}

func (e *NoEntrypointError) Error() string {
	return fmt.Sprintf("no entrypoint found in %s: expected doc.go, main.go or cmd/*/main.go", e.Root)
}

// ResolveEntrypoint decides which source file the package documentation is
// read from and returns its absolute path. An explicit input (flag or
// config) wins and may be a glob pattern; otherwise the search order is
// doc.go in the root, main.go in the root, then main.go files one level
// under cmd/. Several surviving candidates go through choose.
func ResolveEntrypoint(root, explicit string, choose Chooser) (string, error) {
	if explicit != "" {
		return resolveExplicit(root, explicit, choose)
	}

	for _, name := range []string{"doc.go", "main.go"} {
		path := filepath.Join(root, name)
		if fileExists(path) {
			return path, nil
		}
	}

	candidates, err := doublestar.Glob(os.DirFS(root), "cmd/*/main.go")
	if err != nil {
		return "", fmt.Errorf("scanning cmd directories: %w", err)
	}
	return pick(root, candidates, choose)
}

func resolveExplicit(root, pattern string, choose Chooser) (string, error) {
	// Plain paths get a direct existence check so the error message names
	// the file rather than reporting an empty glob.
	if !strings.ContainsAny(pattern, "*?[{") {
		path := filepath.Join(root, pattern)
		if !fileExists(path) {
			return "", fmt.Errorf("input file %s not found in %s", pattern, root)
		}
		return path, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return "", fmt.Errorf("bad input pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("input pattern %q matched nothing in %s", pattern, root)
	}
	return pick(root, matches, choose)
}

func pick(root string, candidates []string, choose Chooser) (string, error) {
	sort.Strings(candidates)
	switch {
	case len(candidates) == 0:
		return "", &NoEntrypointError{Root: root}
	case len(candidates) == 1:
		return filepath.Join(root, filepath.FromSlash(candidates[0])), nil
	case choose == nil:
		return "", &MultipleBinariesError{Candidates: candidates}
	}

	chosen, err := choose(candidates)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(chosen)), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
