package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"shireesh.com/readmegen/internal/generator"
	"shireesh.com/readmegen/internal/tui"
)

var flags struct {
	input            string
	output           string
	projectRoot      string
	template         string
	noTitle          bool
	noLicense        bool
	noTemplate       bool
	noIndentHeadings bool
	force            bool
	verbose          bool
}

var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate README.md from Go package doc comments",
	Long: `readmegen extracts the package documentation from a Go module and turns it
into a README. Doc comment code blocks become fenced ` + "```go" + ` blocks,
headings are indented one level so the module name can sit at the top, and
the result is rendered through README.tpl when the project has one.

Template placeholders: {{crate}}, {{readme}}, {{version}}, {{license}},
{{badges}}. Values come from go.mod and the optional .readmegen.yml.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flags.input, "input", "i", "", "file to read the package doc from; defaults to doc.go, then main.go, then cmd/*/main.go")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "file to write to; defaults to stdout")
	rootCmd.Flags().StringVarP(&flags.projectRoot, "project-root", "r", "", "directory to treat as project root (where go.mod is)")
	rootCmd.Flags().StringVarP(&flags.template, "template", "t", "", "template used to render the output; defaults to README.tpl if it exists")
	rootCmd.Flags().BoolVar(&flags.noTitle, "no-title", false, "do not prepend the title line")
	rootCmd.Flags().BoolVar(&flags.noLicense, "no-license", false, "do not append the license line")
	rootCmd.Flags().BoolVar(&flags.noTemplate, "no-template", false, "ignore the template file when generating")
	rootCmd.Flags().BoolVar(&flags.noIndentHeadings, "no-indent-headings", false, "do not add an extra level to doc headings")
	rootCmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite the output file without asking")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log pipeline steps to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := generator.Options{
		ProjectRoot:      flags.projectRoot,
		Input:            flags.input,
		Output:           flags.output,
		Template:         flags.template,
		NoTitle:          flags.noTitle,
		NoLicense:        flags.noLicense,
		NoTemplate:       flags.noTemplate,
		NoIndentHeadings: flags.noIndentHeadings,
		Logger:           logger,
	}
	if interactive() {
		opts.Choose = tui.SelectEntrypoint
	}

	res, err := generator.Generate(opts)
	if err != nil {
		return err
	}
	return writeResult(res)
}

// writeResult sends the document to stdout or replaces the output file
// atomically, asking before overwriting an existing file on a terminal.
func writeResult(res generator.Result) error {
	if res.Output == "" {
		_, err := os.Stdout.WriteString(res.Text)
		return err
	}

	path := res.Output
	if _, err := os.Stat(path); err == nil && !flags.force && interactive() {
		if !confirmOverwrite(path) {
			return fmt.Errorf("aborted, %s left untouched", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, strings.NewReader(res.Text)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func confirmOverwrite(path string) bool {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s exists, overwrite", path),
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false
	}
	return err == nil
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
