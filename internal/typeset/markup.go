package typeset

import (
	"regexp"
	"strings"
)

var lineBreak = regexp.MustCompile(`(?i)<br\s*/?>`)

var delimiters = [][2]string{
	{"$$", "$$"},
	{`\[`, `\]`},
	{`\(`, `\)`},
}

// RenderBlock converts every math segment of a block and turns <br> tags
// into new lines. Text outside math segments is kept as is; an unterminated
// segment is left untouched.
func RenderBlock(block string) string {
	block = lineBreak.ReplaceAllString(block, "\n")
	if !HasMath(block) {
		return block
	}
	var b strings.Builder
	for {
		open, start, closeTok := nextSegment(block)
		if open < 0 {
			b.WriteString(block)
			return b.String()
		}
		end := strings.Index(block[start:], closeTok)
		if end < 0 {
			b.WriteString(block)
			return b.String()
		}
		b.WriteString(block[:open])
		b.WriteString(Convert(block[start : start+end]))
		block = block[start+end+len(closeTok):]
	}
}

// nextSegment finds the earliest opening delimiter. It returns the index of
// the delimiter, the index where the math starts and the closing token.
func nextSegment(s string) (open, start int, closeTok string) {
	open = -1
	for _, d := range delimiters {
		i := strings.Index(s, d[0])
		if i >= 0 && (open < 0 || i < open) {
			open, start, closeTok = i, i+len(d[0]), d[1]
		}
	}
	return open, start, closeTok
}

// HasMath reports whether a block contains a math segment opener.
func HasMath(block string) bool {
	open, _, _ := nextSegment(block)
	return open >= 0
}
