package assemble

import (
	"sort"

	"github.com/jonathan/resume-curator/internal/types"
)

// Section titles in rendering order
var sectionOrder = []struct {
	kind  types.SectionKind
	title string
}{
	{types.SectionExperience, "Experience"},
	{types.SectionProjects, "Projects"},
	{types.SectionEducation, "Education"},
}

// Assemble builds the resume document for a finished selection. Sections
// appear in fixed order with empty sections omitted; within a section, entries
// are ordered most recent first (ties keep selection order). The returned
// document is a value snapshot: later changes to the selection do not affect
// it.
func Assemble(metadata *types.Metadata, sel *types.SelectionResult, skills []string) (*types.ResumeDocument, error) {
	if err := checkMetadata(metadata); err != nil {
		return nil, err
	}

	doc := &types.ResumeDocument{
		Name:             metadata.Name,
		Email:            metadata.Email,
		Phone:            metadata.Phone,
		Location:         metadata.Location,
		Website:          metadata.Website,
		Skills:           append([]string(nil), skills...),
		Extracurriculars: append([]string(nil), metadata.Extracurriculars...),
		TotalCost:        sel.TotalCost,
		Budget:           sel.Budget,
	}

	for _, section := range sectionOrder {
		entries := entriesFor(sel, section.kind)
		if len(entries) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, types.ResumeSection{
			Kind:    section.kind,
			Title:   section.title,
			Entries: entries,
		})
	}

	return doc, nil
}

// checkMetadata enforces the minimum header requirements
func checkMetadata(metadata *types.Metadata) error {
	missing := []string{}
	if metadata == nil || metadata.Name == "" {
		missing = append(missing, "name")
	}
	if metadata == nil || !metadata.HasContact() {
		missing = append(missing, "contact (email, phone, or website)")
	}
	if len(missing) > 0 {
		return &IncompleteProfileError{Missing: missing}
	}
	return nil
}

// entriesFor collects a section's entries, most recent first.
func entriesFor(sel *types.SelectionResult, kind types.SectionKind) []types.ResumeEntry {
	selected := make([]types.SelectedEntry, 0)
	for _, entry := range sel.Entries {
		if entry.Section == kind {
			selected = append(selected, entry)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].SortKey > selected[j].SortKey
	})

	entries := make([]types.ResumeEntry, 0, len(selected))
	for _, entry := range selected {
		var lines []string
		// Education renders as heading only; its single bullet restates the
		// degree and institution.
		if kind != types.SectionEducation {
			lines = make([]string, 0, len(entry.Bullets))
			for _, b := range entry.Bullets {
				lines = append(lines, b.Text)
			}
		}
		entries = append(entries, types.ResumeEntry{
			EntryID:    entry.EntryID,
			Heading:    entry.Heading,
			Subheading: entry.Subheading,
			Dates:      entry.Dates,
			Lines:      lines,
		})
	}
	return entries
}
