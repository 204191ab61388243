package generator

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"shireesh.com/readmegen/internal/extract"
	"shireesh.com/readmegen/internal/project"
	"shireesh.com/readmegen/internal/template"
)

// Fallback when neither --template nor README.tpl is around: just the doc
// body, with title and license composed by flag.
//
//go:embed README.tpl
var defaultTemplate string

// Options controls a single README generation run. Zero values mean "use
// the default": resolve the root from the working directory, pick the
// entrypoint automatically, print to stdout.
type Options struct {
	// ProjectRoot is the directory holding go.mod. Empty means walk up
	// from the working directory.
	ProjectRoot string
	// Input is a file path or glob relative to the root that names the
	// source file whose package doc is extracted.
	Input string
	// Output is where the caller intends to write the result. Generate
	// only resolves it against the config; writing is the caller's job.
	Output string
	// Template is a template file path relative to the root.
	Template string

	NoTitle          bool
	NoLicense        bool
	NoTemplate       bool
	NoIndentHeadings bool

	// Choose breaks ties between several entrypoint candidates. Nil makes
	// ambiguity a hard error.
	Choose project.Chooser

	Logger *slog.Logger
}

// Result is the rendered document plus the effective output destination
// after merging flags with the project config. Output is empty for stdout.
type Result struct {
	Text   string
	Output string
}

// Generate runs the whole pipeline: locate the project, read its metadata,
// extract and transform the package documentation, then render it through
// the selected template. It never writes anything; the rendered text comes
// back to the caller.
func Generate(opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}

	root, err := project.FindRoot(opts.ProjectRoot, ".")
	if err != nil {
		return Result{}, err
	}
	logger.Debug("resolved project root", "root", root)

	cfg, err := project.LoadConfig(root)
	if err != nil {
		return Result{}, err
	}
	meta, err := project.LoadMetadata(root, cfg)
	if err != nil {
		return Result{}, err
	}

	input := opts.Input
	if input == "" {
		input = cfg.Input
	}
	entry, err := project.ResolveEntrypoint(root, input, opts.Choose)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("resolved entrypoint", "file", entry)

	doc, err := extract.PackageDoc(entry)
	if err != nil {
		return Result{}, err
	}
	body := extract.Transform(doc, !opts.NoIndentHeadings)
	body = strings.TrimRight(body, "\n")

	tpl, source, err := loadTemplate(root, opts, cfg)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("selected template", "source", source)

	text, err := render(tpl, meta, body, opts)
	if err != nil {
		return Result{}, err
	}

	output := opts.Output
	if output == "" {
		output = cfg.Output
	}
	if output != "" {
		output, err = project.ExpandPath(output)
		if err != nil {
			return Result{}, err
		}
		if !filepath.IsAbs(output) {
			output = filepath.Join(root, output)
		}
	}
	return Result{Text: text, Output: output}, nil
}

// loadTemplate picks the template text: the explicit flag or config value
// wins and must exist, then README.tpl in the root if present, then the
// embedded default. --no-template skips everything but the default.
func loadTemplate(root string, opts Options, cfg project.Config) (tpl, source string, err error) {
	if opts.NoTemplate {
		return defaultTemplate, "builtin", nil
	}

	path := opts.Template
	if path == "" {
		path = cfg.Template
	}
	if path != "" {
		expanded, err := project.ExpandPath(path)
		if err != nil {
			return "", "", err
		}
		if !filepath.IsAbs(expanded) {
			expanded = filepath.Join(root, expanded)
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return "", "", fmt.Errorf("reading template %s: %w", path, err)
		}
		return string(data), path, nil
	}

	path = filepath.Join(root, "README.tpl")
	if data, err := os.ReadFile(path); err == nil {
		return string(data), "README.tpl", nil
	}
	return defaultTemplate, "builtin", nil
}

// render substitutes the context into the template and applies the
// title/license composition. A template that mentions {{crate}} or
// {{license}} takes precedence over the corresponding flags.
func render(tpl string, meta project.Metadata, body string, opts Options) (string, error) {
	ctx := map[string]string{
		"crate":  meta.Name,
		"readme": body,
	}
	if meta.Version != "" {
		ctx["version"] = meta.Version
	}
	if meta.License != "" {
		ctx["license"] = meta.License
	}
	if len(meta.Badges) > 0 {
		ctx["badges"] = strings.Join(meta.Badges, "\n")
	}

	text, err := template.Render(tpl, ctx)
	if err != nil {
		return "", err
	}

	if !opts.NoTitle && !template.Has(tpl, "crate") {
		text = "# " + meta.Name + "\n\n" + text
	}
	if !opts.NoLicense && meta.License != "" && !template.Has(tpl, "license") {
		text = strings.TrimRight(text, "\n") + "\n\nLicense: " + meta.License + "\n"
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}
