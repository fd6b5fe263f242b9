// Package typeset is the math typesetting capability for terminals. It finds
// $$ … $$ and \( … \) segments in page regions and rewrites the LaTeX they
// contain as Unicode text, on background goroutines.
package typeset
