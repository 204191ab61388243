package extract

import (
	"regexp"
	"strings"
)

// Code block detection on explicit fence lines. Bare fences and go fences
// open a Go block, ```text collapses to a plain fence, anything else is some
// other language and passes through untouched.
var (
	reFenceGo    = regexp.MustCompile("^```(go)?$")
	reFenceText  = regexp.MustCompile("^```text$")
	reFenceOther = regexp.MustCompile(`^` + "```" + `\w[\w,+-]*$`)
)

type section int

const (
	sectionText section = iota
	sectionGo
	sectionOther
	sectionIndented
)

// Transform rewrites a package doc comment into README-flavored Markdown:
//
//   - runs of indented lines (the doc comment convention for code) become
//     fenced ```go blocks with one indent level stripped
//   - bare ``` fences are tagged as ```go, ```text fences lose their tag,
//     fences for other languages stay as written
//   - inside Go code blocks, lines starting with "# " are hidden and dropped
//   - outside code, "#" headings gain one level when indentHeadings is set,
//     leaving level one free for the crate title
func Transform(doc string, indentHeadings bool) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines)+4)

	state := sectionText
	var pendingBlanks int

	flushIndented := func() {
		out = append(out, "```")
		for ; pendingBlanks > 0; pendingBlanks-- {
			out = append(out, "")
		}
		state = sectionText
	}

	for _, line := range lines {
		switch state {
		case sectionGo:
			if line == "```" {
				out = append(out, line)
				state = sectionText
			} else if !strings.HasPrefix(line, "# ") && line != "#" {
				out = append(out, line)
			}

		case sectionOther:
			out = append(out, line)
			if line == "```" {
				state = sectionText
			}

		case sectionIndented:
			switch {
			case indented(line):
				for ; pendingBlanks > 0; pendingBlanks-- {
					out = append(out, "")
				}
				if code := stripIndent(line); !hidden(code) {
					out = append(out, code)
				}
				continue
			case strings.TrimSpace(line) == "":
				// Might be a gap inside the block or its end; decided by
				// the next non-blank line.
				pendingBlanks++
				continue
			default:
				flushIndented()
			}
			fallthrough

		case sectionText:
			switch {
			case reFenceGo.MatchString(line):
				out = append(out, "```go")
				state = sectionGo
			case reFenceText.MatchString(line):
				out = append(out, "```")
				state = sectionOther
			case reFenceOther.MatchString(line):
				out = append(out, line)
				state = sectionOther
			case indented(line):
				out = append(out, "```go")
				state = sectionIndented
				if code := stripIndent(line); !hidden(code) {
					out = append(out, code)
				}
			case indentHeadings && strings.HasPrefix(line, "#"):
				out = append(out, "#"+line)
			default:
				out = append(out, line)
			}
		}
	}

	if state == sectionIndented {
		flushIndented()
	}

	return strings.Join(out, "\n")
}

func indented(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "    ")
}

func stripIndent(line string) string {
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}
	return strings.TrimPrefix(line, "    ")
}

func hidden(code string) bool {
	return strings.HasPrefix(code, "# ") || code == "#"
}
