// Package types provides type definitions for structured data used throughout the resume-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKind identifies which resume section a scored entry belongs to
type SectionKind string

// Section kinds in their rendering order
const (
	SectionExperience SectionKind = "experience"
	SectionProjects   SectionKind = "projects"
	SectionEducation  SectionKind = "education"
)

// ScoredBullet wraps a single selectable text unit with its relevance score
// and space cost. Bullet IDs are stable within the parent entry, so scoring
// and selection are idempotent for identical inputs.
type ScoredBullet struct {
	BulletID string  `json:"bullet_id"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Cost     int     `json:"cost"`
}

// ScoredEntry groups the scored bullets of one profile entry together with the
// entry's own fixed header cost. The entry score is derived from its bullets,
// but entry headers and bullets are costed independently: a bullet may only be
// selected if its parent header is paid for.
type ScoredEntry struct {
	EntryID    string         `json:"entry_id"`
	Section    SectionKind    `json:"section"`
	Heading    string         `json:"heading"`
	Subheading string         `json:"subheading,omitempty"`
	Dates      string         `json:"dates,omitempty"`
	HeaderCost int            `json:"header_cost"`
	// SortKey orders entries chronologically within a section (higher is
	// more recent, ongoing entries first)
	SortKey int            `json:"sort_key,omitempty"`
	Score   float64        `json:"score"`
	Bullets []ScoredBullet `json:"bullets"`
}
