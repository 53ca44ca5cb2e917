// Package types provides type definitions for structured data used throughout the resume-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument is the intermediate resume model handed to the external
// renderer. It is constructed once per curation run by the assembler and is
// immutable afterwards; the renderer must not perform further selection or
// truncation.
type ResumeDocument struct {
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Location         string          `json:"location,omitempty"`
	Website          string          `json:"website,omitempty"`
	Sections         []ResumeSection `json:"sections"`
	Skills           []string        `json:"skills,omitempty"`
	Extracurriculars []string        `json:"extracurriculars,omitempty"`
	TotalCost        int             `json:"total_cost"`
	Budget           int             `json:"budget"`
}

// ResumeSection is an ordered group of included entries
type ResumeSection struct {
	Kind    SectionKind   `json:"kind"`
	Title   string        `json:"title"`
	Entries []ResumeEntry `json:"entries"`
}

// ResumeEntry is one included entry with its final, possibly optimized, text
type ResumeEntry struct {
	EntryID    string   `json:"entry_id"`
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading,omitempty"`
	Dates      string   `json:"dates,omitempty"`
	Lines      []string `json:"lines"`
}
