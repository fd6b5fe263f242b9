// Package render turns a calculation result into page content: the formula
// summary, the step list and the plot. Math typesetting and charting are
// external capabilities reached through the Typesetter and Charter
// interfaces.
package render
