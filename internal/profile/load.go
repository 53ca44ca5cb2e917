// Package profile provides functionality to load and validate candidate data collections.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-curator/internal/types"
)

// Document names for the four candidate data collections
const (
	docExperiences = "experiences"
	docEducation   = "education"
	docProjects    = "projects"
	docMetadata    = "metadata"
)

// experiencesDoc mirrors the on-disk shape of experiences.json
type experiencesDoc struct {
	Experiences []types.Experience `json:"experiences"`
}

// educationDoc mirrors the on-disk shape of education.json
type educationDoc struct {
	Education []types.EducationEntry `json:"education"`
}

// projectsDoc mirrors the on-disk shape of projects.json
type projectsDoc struct {
	Projects []types.Project `json:"projects"`
}

// Load reads the four candidate data documents (experiences, education,
// projects, metadata) from the given filesystem, validates them, and returns
// a typed, immutable CandidateProfile.
//
// Validation reports every violation found across all documents, not just the
// first: schema-level checks via the embedded JSON Schemas, struct-level
// checks via validator tags, and date-range/cost checks on top.
func Load(fsys fs.FS) (*types.CandidateProfile, error) {
	verr := &ValidationError{}

	raw := make(map[string][]byte, 4)
	for _, doc := range []string{docExperiences, docEducation, docProjects, docMetadata} {
		content, err := fs.ReadFile(fsys, doc+".json")
		if err != nil {
			verr.add(doc, "(file)", fmt.Sprintf("required document %s.json is missing or unreadable", doc))
			continue
		}
		raw[doc] = content
		if err := validateSchema(verr, doc, content); err != nil {
			return nil, err
		}
	}

	if len(verr.Violations) > 0 {
		return nil, verr
	}

	var experiences experiencesDoc
	var education educationDoc
	var projects projectsDoc
	var metadata types.Metadata

	for doc, target := range map[string]any{
		docExperiences: &experiences,
		docEducation:   &education,
		docProjects:    &projects,
		docMetadata:    &metadata,
	} {
		if err := json.Unmarshal(raw[doc], target); err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("failed to unmarshal %s.json", doc), Cause: err}
		}
	}

	profile := &types.CandidateProfile{
		Experiences: experiences.Experiences,
		Education:   education.Education,
		Projects:    projects.Projects,
		Metadata:    metadata,
	}

	validateProfile(verr, profile)
	if len(verr.Violations) > 0 {
		return nil, verr
	}

	deriveCosts(profile)
	return profile, nil
}

// validateProfile runs struct-level and date-range checks, collecting every
// violation into verr.
func validateProfile(verr *ValidationError, profile *types.CandidateProfile) {
	validate := validator.New()

	for i := range profile.Experiences {
		exp := &profile.Experiences[i]
		collectStructErrors(verr, validate, docExperiences, fmt.Sprintf("experiences[%d]", i), exp)
		checkDateRange(verr, docExperiences, fmt.Sprintf("experiences[%d]", i), exp.StartDate, exp.EndDate)
	}
	for i := range profile.Education {
		edu := &profile.Education[i]
		collectStructErrors(verr, validate, docEducation, fmt.Sprintf("education[%d]", i), edu)
		checkDateRange(verr, docEducation, fmt.Sprintf("education[%d]", i), edu.StartDate, edu.EndDate)
	}
	for i := range profile.Projects {
		collectStructErrors(verr, validate, docProjects, fmt.Sprintf("projects[%d]", i), &profile.Projects[i])
	}
	collectStructErrors(verr, validate, docMetadata, "metadata", &profile.Metadata)

	checkUniqueIdentity(verr, profile)
}

// collectStructErrors translates validator field errors into violations
func collectStructErrors(verr *ValidationError, validate *validator.Validate, document, prefix string, value any) {
	err := validate.Struct(value)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add(document, prefix, err.Error())
		return
	}
	for _, fe := range fieldErrs {
		verr.add(document, fmt.Sprintf("%s.%s", prefix, fe.Field()), fmt.Sprintf("failed %q constraint", fe.Tag()))
	}
}

// checkDateRange validates that dates parse and that start <= end.
// An absent end date means "present".
func checkDateRange(verr *ValidationError, document, prefix, start, end string) {
	startTime, ok := parseDate(start)
	if !ok {
		verr.add(document, prefix+".start_date", fmt.Sprintf("malformed date %q (want YYYY or YYYY-MM)", start))
		return
	}
	if isPresent(end) {
		return
	}
	endTime, ok := parseDate(end)
	if !ok {
		verr.add(document, prefix+".end_date", fmt.Sprintf("malformed date %q (want YYYY, YYYY-MM, or empty for present)", end))
		return
	}
	if startTime.After(endTime) {
		verr.add(document, prefix, fmt.Sprintf("start date %s is after end date %s", start, end))
	}
}

// checkUniqueIdentity verifies that entry and bullet IDs are stable and unique
// within the profile, which scoring and selection rely on for idempotence.
func checkUniqueIdentity(verr *ValidationError, profile *types.CandidateProfile) {
	seen := make(map[string]bool)
	record := func(document, field, id string) {
		if id == "" {
			return // required checks already reported
		}
		if seen[id] {
			verr.add(document, field, fmt.Sprintf("duplicate id %q", id))
			return
		}
		seen[id] = true
	}

	for i, exp := range profile.Experiences {
		record(docExperiences, fmt.Sprintf("experiences[%d].id", i), exp.ID)
		for j, b := range exp.Bullets {
			record(docExperiences, fmt.Sprintf("experiences[%d].bullets[%d].id", i, j), b.ID)
		}
	}
	for i, edu := range profile.Education {
		record(docEducation, fmt.Sprintf("education[%d].id", i), edu.ID)
	}
	for i, proj := range profile.Projects {
		record(docProjects, fmt.Sprintf("projects[%d].id", i), proj.ID)
		for j, b := range proj.Bullets {
			record(docProjects, fmt.Sprintf("projects[%d].bullets[%d].id", i, j), b.ID)
		}
	}
}

// deriveCosts fills in estimated space costs for bullets and entries that did
// not declare one. Every derived cost is at least one line.
func deriveCosts(profile *types.CandidateProfile) {
	for i := range profile.Experiences {
		for j := range profile.Experiences[i].Bullets {
			deriveBulletCost(&profile.Experiences[i].Bullets[j])
		}
	}
	for i := range profile.Projects {
		for j := range profile.Projects[i].Bullets {
			deriveBulletCost(&profile.Projects[i].Bullets[j])
		}
	}
	for i := range profile.Education {
		if profile.Education[i].Cost == 0 {
			profile.Education[i].Cost = 1
		}
	}
}

func deriveBulletCost(b *types.BulletPoint) {
	if b.Cost > 0 {
		return
	}
	cost := types.TextLineCost(b.Text)
	if cost < 1 {
		cost = 1
	}
	b.Cost = cost
}

// parseDate parses YYYY or YYYY-MM dates
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isPresent reports whether an end date means "still ongoing"
func isPresent(end string) bool {
	switch strings.ToLower(strings.TrimSpace(end)) {
	case "", "present", "current":
		return true
	}
	return false
}
