// Package ui holds the console color palette and the terminal status
// sink.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Console colors
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Console reports editor status messages and the graph caption on the
// terminal. It satisfies the editor's status sink.
type Console struct {
	// Quiet drops status messages and keeps only captions.
	Quiet bool

	lastCaption string
}

// Status prints a transient status message.
func (c *Console) Status(text string) {
	if c.Quiet {
		return
	}
	Info.Printf("  %s\n", text)
}

// Caption prints the graph caption when it changes.
func (c *Console) Caption(text string) {
	if text == c.lastCaption {
		return
	}
	c.lastCaption = text
	Subtle.Printf("  %s\n", text)
}

// Banner prints the program banner.
func Banner(subtitle string) {
	fmt.Printf("%s — %s\n\n", Brand.Sprint("graphed"), subtitle)
}

// Table prints a simple aligned table.
func Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Println(headerLine)
	Subtle.Println(sepLine)

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Println(line)
	}
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}
