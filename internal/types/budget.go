// Package types provides type definitions for structured data used throughout the resume-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

const (
	// CharsPerLine is the estimated number of characters per rendered line
	CharsPerLine = 80
	// LinesPerPage is the estimated number of lines per rendered page
	LinesPerPage = 45
)

// PagesToLines converts a page budget to a line budget.
func PagesToLines(pages int) int {
	return pages * LinesPerPage
}

// TextLineCost estimates the space cost of a piece of text in lines,
// accounting for explicit newlines and character wrapping. Blank text costs
// nothing; a blank line inside text still takes space.
func TextLineCost(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	total := 0
	for _, line := range strings.Split(text, "\n") {
		if len(line) == 0 {
			total++
			continue
		}
		total += (len(line) + CharsPerLine - 1) / CharsPerLine
	}
	return total
}
