package selection

import (
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// BuildSelectionSet derives the export payload from the current document:
// selected skill names, ids of selected entries plus their selected bullets,
// and ids of selected leadership entries. Read-only; the document is not
// modified.
func BuildSelectionSet(r *types.Resume) types.SelectionSet {
	set := types.SelectionSet{
		Skills:     []string{},
		Experience: []string{},
		Projects:   []string{},
		Leadership: []string{},
	}
	if r == nil {
		return set
	}

	for _, cat := range r.Skills {
		for _, item := range cat.Items {
			if item.Selected {
				set.Skills = append(set.Skills, item.Name)
			}
		}
	}

	for _, entry := range r.Experience {
		if !entry.Selected {
			continue
		}
		set.Experience = append(set.Experience, entry.ID)
		for _, b := range entry.Bullets {
			if b.Selected {
				set.Experience = append(set.Experience, b.ID)
			}
		}
	}

	for _, entry := range r.Projects {
		if !entry.Selected {
			continue
		}
		set.Projects = append(set.Projects, entry.ID)
		for _, b := range entry.Bullets {
			if b.Selected {
				set.Projects = append(set.Projects, b.ID)
			}
		}
	}

	for _, entry := range r.Leadership {
		if entry.Selected {
			set.Leadership = append(set.Leadership, entry.ID)
		}
	}

	return set
}
