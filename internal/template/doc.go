// Package template implements the placeholder substitution used to render
// README templates. It understands exactly one construct, {{name}}, and
// deliberately nothing else: no conditionals, no escaping, and no recursive
// expansion of replacement values. Everything outside a placeholder passes
// through byte for byte, which matters because the surrounding text carries
// license boilerplate that must survive rendering unchanged.
package template
