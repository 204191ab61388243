package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// ErrNoRoot is returned when no go.mod can be found in the start directory
// or any of its parents.
var ErrNoRoot = errors.New("no go.mod found in this directory or any parent")

// Metadata is everything the generator knows about the project being
// documented. Name always has a value; the rest is optional and comes from
// the config file.
type Metadata struct {
	Name    string
	Version string
	License string
	Badges  []string
}

// FindRoot resolves the project root directory. An explicit path (from the
// --project-root flag) is expanded and must exist; otherwise the search
// walks up from dir until it finds a directory containing go.mod.
func FindRoot(explicit, dir string) (string, error) {
	if explicit != "" {
		root, err := ExpandPath(explicit)
		if err != nil {
			return "", err
		}
		info, err := os.Stat(root)
		if err != nil {
			return "", fmt.Errorf("project root %s: %w", explicit, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project root %s is not a directory", explicit)
		}
		return root, nil
	}

	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(cur, "go.mod")); err == nil {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", ErrNoRoot
		}
		cur = parent
	}
}

// ModuleName returns the last element of the module path declared in the
// root's go.mod, which serves as the default package display name.
func ModuleName(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("reading go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("go.mod in %s declares no module path", root)
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path, nil
}

// LoadMetadata combines go.mod and the optional config file into the
// project metadata. Config values win over derived ones.
func LoadMetadata(root string, cfg Config) (Metadata, error) {
	meta := Metadata{
		Name:    cfg.Name,
		Version: cfg.Version,
		License: cfg.License,
		Badges:  cfg.Badges,
	}
	if meta.Name == "" {
		name, err := ModuleName(root)
		if err != nil {
			return Metadata{}, err
		}
		meta.Name = name
	}
	return meta, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
