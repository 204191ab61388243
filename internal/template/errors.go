package template

import (
	"fmt"
	"strings"
)

// MissingKeyError reports placeholders that appear in the template but have
// no value in the context. Keys are listed in order of first appearance,
// without duplicates. The whole render fails; no partially substituted
// output is ever returned.
type MissingKeyError struct {
	Keys []string
}

func (e *MissingKeyError) Error() string {
	if len(e.Keys) == 1 {
		return fmt.Sprintf("template: no value for placeholder {{%s}}", e.Keys[0])
	}
	return fmt.Sprintf("template: no value for placeholders {{%s}}", strings.Join(e.Keys, "}}, {{"))
}

// MalformedTokenError reports an opening "{{" that is never closed or that
// encloses characters outside the identifier charset. Offset is the byte
// position of the opening delimiter in the template.
type MalformedTokenError struct {
	Offset int
	Token  string
	Reason string
}

func (e *MalformedTokenError) Error() string {
	token := e.Token
	if len(token) > 32 {
		token = token[:32] + "..."
	}
	return fmt.Sprintf("template: malformed token %q at byte %d: %s", token, e.Offset, e.Reason)
}
