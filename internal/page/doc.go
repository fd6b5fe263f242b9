// Package page models the user surface the client draws on: text regions
// that can be shown, hidden and re-rendered by the typesetter, the
// calculate trigger, and the plot canvas.
//
// Every element is safe for concurrent use. Typesetting happens on
// background goroutines, so regions carry a generation that increases on
// every content change; rendered output computed for an older generation is
// discarded.
package page
