package types

// SectionName identifies a reorderable resume section. Skills and education
// are not reorderable.
type SectionName string

// Reorderable sections.
const (
	SectionExperience SectionName = "experience"
	SectionProjects   SectionName = "projects"
	SectionLeadership SectionName = "leadership"
)

// EntryKind distinguishes the two bullet-bearing entry lists.
type EntryKind string

// Entry kinds for bullet and entry toggles.
const (
	KindExperience EntryKind = "experience"
	KindProject    EntryKind = "project"
)

// ValidSection reports whether s names a reorderable section.
func ValidSection(s SectionName) bool {
	switch s {
	case SectionExperience, SectionProjects, SectionLeadership:
		return true
	}
	return false
}

// SectionIDs returns the current identity order of a reorderable section, or
// nil for an unknown section.
func (r *Resume) SectionIDs(section SectionName) []string {
	switch section {
	case SectionExperience:
		ids := make([]string, len(r.Experience))
		for i, e := range r.Experience {
			ids[i] = e.ID
		}
		return ids
	case SectionProjects:
		ids := make([]string, len(r.Projects))
		for i, p := range r.Projects {
			ids[i] = p.ID
		}
		return ids
	case SectionLeadership:
		ids := make([]string, len(r.Leadership))
		for i, l := range r.Leadership {
			ids[i] = l.ID
		}
		return ids
	}
	return nil
}
