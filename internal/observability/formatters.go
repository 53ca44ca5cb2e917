// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-curator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobDescription outputs a human-readable summary of the parsed job.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:  %s\n", jd.Title))
	if jd.Seniority != "" {
		sb.WriteString(fmt.Sprintf("Level: %s\n", jd.Seniority))
	}
	sb.WriteString("\n")

	writeTermList(&sb, "Required Skills", jd.RequiredSkills)
	writeTermList(&sb, "Preferred Skills", jd.PreferredSkills)
	writeTermList(&sb, "Keywords", jd.Keywords)

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoredEntries outputs the top scored entries with their bullet counts.
func (p *Printer) PrintScoredEntries(entries []types.ScoredEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries scored: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, entry.Heading))
		sb.WriteString(fmt.Sprintf("    Score: %.2f  Bullets: %d\n", entry.Score, len(entry.Bullets)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("SCORED ENTRIES", sb.String())
}

// PrintSelection outputs the selection with its budget accounting.
func (p *Printer) PrintSelection(sel *types.SelectionResult) {
	if sel == nil {
		return
	}

	var sb strings.Builder

	if sel.Empty() {
		sb.WriteString("No content fit the page budget.\n")
		sb.WriteString(fmt.Sprintf("Budget: %d lines", sel.Budget))
		p.printBox("SELECTION", sb.String())
		return
	}

	bullets := 0
	for _, entry := range sel.Entries {
		bullets += len(entry.Bullets)
	}
	sb.WriteString(fmt.Sprintf("Entries: %d  Bullets: %d\n", len(sel.Entries), bullets))
	sb.WriteString(fmt.Sprintf("Lines:   %d of %d budget\n", sel.TotalCost, sel.Budget))
	sb.WriteString(fmt.Sprintf("Score:   %.2f\n\n", sel.TotalScore))

	count := min(len(sel.Entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := sel.Entries[i]
		sb.WriteString(fmt.Sprintf("• %s (%d bullets)\n", entry.Heading, len(entry.Bullets)))
	}
	if len(sel.Entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more entries\n", len(sel.Entries)-maxItemsToShow))
	}

	p.printBox("SELECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResume outputs the assembled document outline.
func (p *Printer) PrintResume(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", doc.Name))

	contacts := []string{}
	for _, c := range []string{doc.Email, doc.Phone, doc.Website} {
		if c != "" {
			contacts = append(contacts, c)
		}
	}
	if len(contacts) > 0 {
		sb.WriteString(strings.Join(contacts, " | "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, section := range doc.Sections {
		sb.WriteString(fmt.Sprintf("%s (%d entries)\n", section.Title, len(section.Entries)))
	}
	if len(doc.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(doc.Skills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("\nLines used: %d of %d", doc.TotalCost, doc.Budget))

	p.printBox("ASSEMBLED RESUME", sb.String())
}

// writeTermList appends a truncated bullet list of terms
func writeTermList(sb *strings.Builder, title string, terms []string) {
	if len(terms) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(terms), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", terms[i]))
	}
	if len(terms) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(terms)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
