package extract

import (
	"fmt"
	"go/parser"
	"go/token"
)

// NoDocError reports a source file whose package clause carries no doc
// comment, so there is nothing to generate a README from.
type NoDocError struct {
	Path string
}

func (e *NoDocError) Error() string {
	return fmt.Sprintf("no package doc comment found in %s", e.Path)
}

// PackageDoc parses the Go source file at path and returns its package doc
// comment with the comment markers stripped. Only the package clause is
// parsed, so the file may contain code that does not compile on its own.
func PackageDoc(path string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.PackageClauseOnly|parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if file.Doc == nil || len(file.Doc.List) == 0 {
		return "", &NoDocError{Path: path}
	}
	return file.Doc.Text(), nil
}
