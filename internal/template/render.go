package template

import (
	"strings"
)

// Render substitutes every {{name}} placeholder in tpl with the value mapped
// under that name in ctx and returns the result. Literal text outside
// placeholders is preserved byte for byte. Substitution is a single pass:
// replacement values are inserted verbatim and are never re-scanned for
// further placeholders, so a value that happens to contain "{{...}}" stays
// exactly as supplied.
//
// Placeholder names are case-sensitive identifiers made of letters, digits
// and underscores. The delimiters "{{" and "}}" cannot be escaped.
//
// Render fails with a *MalformedTokenError when an opening "{{" is never
// closed or encloses a non-identifier character, and with a
// *MissingKeyError naming every placeholder that has no value in ctx.
func Render(tpl string, ctx map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(tpl))

	var missing []string
	seen := map[string]bool{}

	rest := tpl
	offset := 0
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:open])

		tokenStart := offset + open
		body := rest[open+2:]
		closing := strings.Index(body, "}}")
		if closing < 0 {
			return "", &MalformedTokenError{
				Offset: tokenStart,
				Token:  rest[open:],
				Reason: "no closing }} before end of input",
			}
		}

		name := body[:closing]
		if !validIdentifier(name) {
			return "", &MalformedTokenError{
				Offset: tokenStart,
				Token:  rest[open : open+2+closing+2],
				Reason: "placeholder name must be letters, digits or underscores",
			}
		}

		if value, ok := ctx[name]; ok {
			out.WriteString(value)
		} else if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}

		consumed := open + 2 + closing + 2
		rest = rest[consumed:]
		offset += consumed
	}

	if len(missing) > 0 {
		return "", &MissingKeyError{Keys: missing}
	}
	return out.String(), nil
}

// Placeholders scans tpl and returns the distinct placeholder names in order
// of first appearance. It fails with a *MalformedTokenError under the same
// conditions as Render.
func Placeholders(tpl string) ([]string, error) {
	var names []string
	seen := map[string]bool{}

	rest := tpl
	offset := 0
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			return names, nil
		}
		tokenStart := offset + open
		body := rest[open+2:]
		closing := strings.Index(body, "}}")
		if closing < 0 {
			return nil, &MalformedTokenError{
				Offset: tokenStart,
				Token:  rest[open:],
				Reason: "no closing }} before end of input",
			}
		}
		name := body[:closing]
		if !validIdentifier(name) {
			return nil, &MalformedTokenError{
				Offset: tokenStart,
				Token:  rest[open : open+2+closing+2],
				Reason: "placeholder name must be letters, digits or underscores",
			}
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		consumed := open + 2 + closing + 2
		rest = rest[consumed:]
		offset += consumed
	}
}

// Has reports whether tpl contains the placeholder name. Malformed templates
// report false; Render will surface the error itself.
func Has(tpl, name string) bool {
	names, err := Placeholders(tpl)
	if err != nil {
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
