// Package types provides type definitions for structured data used throughout the resume-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile is the immutable, validated view of all candidate data.
// It is loaded once per process and shared read-only across curation runs.
type CandidateProfile struct {
	Experiences []Experience     `json:"experiences"`
	Education   []EducationEntry `json:"education"`
	Projects    []Project        `json:"projects"`
	Metadata    Metadata         `json:"metadata"`
}

// Experience represents a single work experience entry with stable ID
type Experience struct {
	ID        string        `json:"id" validate:"required"`
	Employer  string        `json:"employer" validate:"required"`
	Title     string        `json:"title" validate:"required"`
	StartDate string        `json:"start_date" validate:"required"`
	EndDate   string        `json:"end_date"`
	Bullets   []BulletPoint `json:"bullets" validate:"required,min=1,dive"`
	Tags      []string      `json:"tags,omitempty"`
}

// BulletPoint represents a single statement with a stable ID within its parent
// entry and an estimated space cost in lines. A zero cost means "estimate from
// the text length at load time".
type BulletPoint struct {
	ID   string   `json:"id" validate:"required"`
	Text string   `json:"text" validate:"required"`
	Tags []string `json:"tags,omitempty"`
	Cost int      `json:"cost" validate:"gte=0"`
}

// EducationEntry represents a single education entry
type EducationEntry struct {
	ID          string `json:"id" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date"`
	Cost        int    `json:"cost" validate:"gte=0"`
}

// Project represents a personal or academic project
type Project struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Bullets     []BulletPoint `json:"bullets" validate:"required,min=1,dive"`
	Tags        []string      `json:"tags,omitempty"`
}

// Metadata holds candidate personal information and contact details
type Metadata struct {
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Location         string   `json:"location,omitempty"`
	Website          string   `json:"website,omitempty"`
	SpokenLanguages  []string `json:"spoken_languages,omitempty"`
	Extracurriculars []string `json:"extracurriculars,omitempty"`
}

// HasContact reports whether at least one contact method is present.
func (m *Metadata) HasContact() bool {
	return m.Email != "" || m.Phone != "" || m.Website != ""
}
