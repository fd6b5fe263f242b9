package typeset

import (
	"strings"
	"unicode"
)

var symbols = map[string]string{
	"int": "∫", "iint": "∬", "oint": "∮", "sum": "∑", "prod": "∏",
	"infty": "∞", "approx": "≈", "cdot": "·", "times": "×", "div": "÷",
	"pm": "±", "mp": "∓", "leq": "≤", "le": "≤", "geq": "≥", "ge": "≥",
	"neq": "≠", "ne": "≠", "equiv": "≡", "to": "→", "rightarrow": "→",
	"Rightarrow": "⇒", "implies": "⇒", "leftarrow": "←", "partial": "∂",
	"nabla": "∇", "cdots": "⋯", "ldots": "…", "dots": "…", "circ": "∘",
	"degree": "°", "prime": "′", "in": "∈",

	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ε",
	"varepsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ", "vartheta": "ϑ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"pi": "π", "rho": "ρ", "sigma": "σ", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "varphi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ", "Xi": "Ξ",
	"Pi": "Π", "Sigma": "Σ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	"quad": "  ", "qquad": "    ",
}

// Operator names print as plain words.
var operators = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"arcsin": true, "arccos": true, "arctan": true, "sinh": true, "cosh": true,
	"tanh": true, "ln": true, "log": true, "exp": true, "lim": true,
	"max": true, "min": true,
}

// Commands whose single argument is printed as is.
var wrappers = map[string]bool{
	"boxed": true, "text": true, "textrm": true, "mathrm": true, "mathbf": true,
	"mathit": true, "operatorname": true, "mathsf": true, "textbf": true,
}

// Commands that produce nothing.
var ignored = map[string]bool{
	"displaystyle": true, "textstyle": true, "limits": true, "nolimits": true,
	"big": true, "Big": true, "bigg": true, "Bigg": true,
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴', '5': '⁵', '6': '⁶',
	'7': '⁷', '8': '⁸', '9': '⁹', '+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽',
	')': '⁾', 'n': 'ⁿ', 'i': 'ⁱ', 'x': 'ˣ', 'y': 'ʸ', 'a': 'ᵃ', 'b': 'ᵇ',
	'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ', 'k': 'ᵏ', 'm': 'ᵐ', 't': 'ᵗ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄', '5': '₅', '6': '₆',
	'7': '₇', '8': '₈', '9': '₉', '+': '₊', '-': '₋', '=': '₌', '(': '₍',
	')': '₎', 'a': 'ₐ', 'e': 'ₑ', 'i': 'ᵢ', 'j': 'ⱼ', 'k': 'ₖ', 'n': 'ₙ',
	'o': 'ₒ', 'x': 'ₓ', 't': 'ₜ',
}

// Convert rewrites a LaTeX math expression as Unicode text. Unknown
// commands are printed by name.
func Convert(latex string) string {
	p := &parser{src: []rune(latex)}
	return collapseSpaces(p.sequence(false))
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// sequence converts until the end of input, or until the closing brace of
// the current group when inGroup is set.
func (p *parser) sequence(inGroup bool) string {
	var b strings.Builder
	for !p.eof() {
		c := p.peek()
		if c == '}' {
			p.pos++
			if inGroup {
				return b.String()
			}
			continue
		}
		b.WriteString(p.atom())
	}
	return b.String()
}

// atom converts the next token, including any scripts attached to it.
func (p *parser) atom() string {
	c := p.peek()
	p.pos++
	switch c {
	case '{':
		return p.sequence(true)
	case '^':
		return script(p.argument(), superscripts, "^")
	case '_':
		return script(p.argument(), subscripts, "_")
	case '\\':
		return p.command()
	case '~':
		return " "
	case '&':
		return ""
	}
	return string(c)
}

// argument reads one group or one token.
func (p *parser) argument() string {
	for !p.eof() && p.peek() == ' ' {
		p.pos++
	}
	if p.eof() {
		return ""
	}
	if p.peek() == '{' {
		p.pos++
		return p.sequence(true)
	}
	return p.atom()
}

func (p *parser) command() string {
	if p.eof() {
		return "\\"
	}
	c := p.peek()
	if !unicode.IsLetter(c) {
		p.pos++
		switch c {
		case ',', ':', ';', ' ':
			return " "
		case '!':
			return ""
		case '\\':
			return "\n"
		}
		return string(c)
	}

	start := p.pos
	for !p.eof() && unicode.IsLetter(p.peek()) {
		p.pos++
	}
	name := string(p.src[start:p.pos])

	switch {
	case name == "frac" || name == "dfrac" || name == "tfrac":
		num, den := p.argument(), p.argument()
		return group(num) + "/" + group(den)
	case name == "sqrt":
		var index string
		if p.peek() == '[' {
			end := p.pos + 1
			for end < len(p.src) && p.src[end] != ']' {
				end++
			}
			index = Convert(string(p.src[p.pos+1 : min(end, len(p.src))]))
			p.pos = min(end+1, len(p.src))
		}
		return script(index, superscripts, "") + "√" + group(p.argument())
	case name == "left" || name == "right":
		for !p.eof() && p.peek() == ' ' {
			p.pos++
		}
		if p.eof() {
			return ""
		}
		d := p.atom()
		if d == "." {
			return ""
		}
		return d
	case wrappers[name]:
		return p.argument()
	case ignored[name]:
		return ""
	case operators[name]:
		return name
	}
	if s, ok := symbols[name]; ok {
		return s
	}
	return name
}

// script maps s onto a Unicode script alphabet, falling back to the marker
// followed by s (parenthesised when longer than one rune).
func script(s string, alphabet map[rune]rune, marker string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		m, ok := alphabet[r]
		if !ok {
			return marker + group(s)
		}
		b.WriteRune(m)
	}
	return b.String()
}

// group parenthesises s unless it is a single term.
func group(s string) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= 1 || isTerm(s) {
		return s
	}
	return "(" + s + ")"
}

func isTerm(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && !scriptRunes[r] {
			return false
		}
	}
	return true
}

var scriptRunes = func() map[rune]bool {
	m := make(map[rune]bool, len(superscripts)+len(subscripts))
	for _, alphabet := range []map[rune]rune{superscripts, subscripts} {
		for k, v := range alphabet {
			if unicode.IsLetter(k) || unicode.IsDigit(k) {
				m[v] = true
			}
		}
	}
	return m
}()

func collapseSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}
