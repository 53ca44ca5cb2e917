// Package types provides type definitions for structured data used throughout the resume-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SelectionReason reports how a selection ended. A too-small budget is a
// result state, not an error, so callers can present "nothing fits" distinctly
// from a crash.
type SelectionReason string

// Selection reasons
const (
	ReasonOK             SelectionReason = "ok"
	ReasonBudgetTooSmall SelectionReason = "budget_too_small"
)

// SelectedEntry is one chosen entry with the subset of its bullets that made
// the cut, in original profile order
type SelectedEntry struct {
	EntryID    string         `json:"entry_id"`
	Section    SectionKind    `json:"section"`
	Heading    string         `json:"heading"`
	Subheading string         `json:"subheading,omitempty"`
	Dates      string         `json:"dates,omitempty"`
	HeaderCost int            `json:"header_cost"`
	SortKey    int            `json:"sort_key,omitempty"`
	Bullets    []ScoredBullet `json:"bullets"`
}

// SelectionResult is the outcome of content selection: an ordered subset of
// entries whose total space cost never exceeds the page budget.
type SelectionResult struct {
	Entries    []SelectedEntry `json:"entries"`
	TotalCost  int             `json:"total_cost"`
	TotalScore float64         `json:"total_score"`
	Budget     int             `json:"budget"`
	Reason     SelectionReason `json:"reason"`
}

// Empty reports whether no entries were selected.
func (r *SelectionResult) Empty() bool {
	return len(r.Entries) == 0
}

// Clone returns a deep copy so optimizers can rewrite text without touching
// the selector's output.
func (r *SelectionResult) Clone() *SelectionResult {
	out := &SelectionResult{
		Entries:    make([]SelectedEntry, len(r.Entries)),
		TotalCost:  r.TotalCost,
		TotalScore: r.TotalScore,
		Budget:     r.Budget,
		Reason:     r.Reason,
	}
	for i, entry := range r.Entries {
		cloned := entry
		cloned.Bullets = make([]ScoredBullet, len(entry.Bullets))
		copy(cloned.Bullets, entry.Bullets)
		out.Entries[i] = cloned
	}
	return out
}
