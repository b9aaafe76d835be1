// Package render: Greek-glyph substitution for edge labels.

package render

import "strings"

// greek maps the conventional spelled-out parameter names to their
// lowercase Greek glyphs.
var greek = map[string]string{
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"iota":    "ι",
	"kappa":   "κ",
	"lambda":  "λ",
	"mu":      "μ",
	"nu":      "ν",
	"xi":      "ξ",
	"omicron": "ο",
	"pi":      "π",
	"rho":     "ρ",
	"sigma":   "σ",
	"tau":     "τ",
	"upsilon": "υ",
	"phi":     "φ",
	"chi":     "χ",
	"psi":     "ψ",
	"omega":   "ω",
}

// Prettify rewrites spelled-out Greek parameter names inside a rate
// string into their glyphs. Only whole identifiers (optionally with a
// numeric suffix, like beta2) are rewritten; an identifier such as
// "betamax" is left alone.
func Prettify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if !isIdentStart(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(s) && isIdentPart(s[j]) {
			j++
		}
		b.WriteString(prettifyIdent(s[i:j]))
		i = j
	}
	return b.String()
}

func prettifyIdent(id string) string {
	// split a trailing digit run off the name
	k := len(id)
	for k > 0 && id[k-1] >= '0' && id[k-1] <= '9' {
		k--
	}
	if glyph, ok := greek[id[:k]]; ok {
		return glyph + id[k:]
	}
	return id
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
