// Command readmegen generates a README from a Go module's package doc
// comment, optionally through a {{name}} placeholder template.
//
// Run it from anywhere inside a module:
//
//	readmegen > README.md
//
// or point it somewhere else:
//
//	readmegen --project-root ../other --output README.md
package main

import (
	"shireesh.com/readmegen/cmd"
)

func main() {
	cmd.Execute()
}
