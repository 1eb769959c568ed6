// Package selection implements the pure document transitions behind every
// selection control: per-item toggles, whole-entry toggles, bulk select, and
// relevance-driven suggestions. Every function returns a fresh snapshot and
// never mutates its input; a transition aimed at a missing item returns the
// document unchanged.
package selection

import (
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// ToggleSkill flips the selection of one skill item, matched by category and
// skill name.
func ToggleSkill(r *types.Resume, category, skillName string) *types.Resume {
	out := *r
	out.Skills = mapCategory(r.Skills, category, func(items []types.SkillItem) []types.SkillItem {
		for _, item := range items {
			if item.Name == skillName {
				return types.WithItemSelected(items, skillName, !item.Selected)
			}
		}
		return items
	})
	return &out
}

// SetSkillCategory sets every item in the named category to selected. The
// caller decides the target value: clicking a category header selects all
// unless everything is already selected, in which case it deselects all.
func SetSkillCategory(r *types.Resume, category string, selected bool) *types.Resume {
	out := *r
	out.Skills = mapCategory(r.Skills, category, func(items []types.SkillItem) []types.SkillItem {
		next := make([]types.SkillItem, len(items))
		for i, item := range items {
			next[i] = item.WithSelected(selected)
		}
		return next
	})
	return &out
}

// AllSelected reports whether every item in the named category is selected.
// It is the input to the caller's SetSkillCategory negation.
func AllSelected(r *types.Resume, category string) bool {
	for _, cat := range r.Skills {
		if cat.Name != category {
			continue
		}
		for _, item := range cat.Items {
			if !item.Selected {
				return false
			}
		}
		return true
	}
	return false
}

// ToggleBullet flips the selection of one bullet inside the matching entry of
// the given kind. The entry's own selection flag is left untouched.
func ToggleBullet(r *types.Resume, kind types.EntryKind, entryID, bulletID string) *types.Resume {
	out := *r
	switch kind {
	case types.KindExperience:
		out.Experience = make([]types.ExperienceEntry, len(r.Experience))
		copy(out.Experience, r.Experience)
		for i, entry := range out.Experience {
			if entry.ID == entryID {
				out.Experience[i].Bullets = flipBullet(entry.Bullets, bulletID)
			}
		}
	case types.KindProject:
		out.Projects = make([]types.ProjectEntry, len(r.Projects))
		copy(out.Projects, r.Projects)
		for i, entry := range out.Projects {
			if entry.ID == entryID {
				out.Projects[i].Bullets = flipBullet(entry.Bullets, bulletID)
			}
		}
	}
	return &out
}

// ToggleEntry flips the matching entry's own selection and forces every
// bullet under it to the same new value. The entry toggle is authoritative
// over its children: it intentionally overrides any prior per-bullet state.
func ToggleEntry(r *types.Resume, kind types.EntryKind, entryID string) *types.Resume {
	out := *r
	switch kind {
	case types.KindExperience:
		out.Experience = make([]types.ExperienceEntry, len(r.Experience))
		copy(out.Experience, r.Experience)
		for i, entry := range out.Experience {
			if entry.ID == entryID {
				next := !entry.Selected
				out.Experience[i].Selected = next
				out.Experience[i].Bullets = setBullets(entry.Bullets, next)
			}
		}
	case types.KindProject:
		out.Projects = make([]types.ProjectEntry, len(r.Projects))
		copy(out.Projects, r.Projects)
		for i, entry := range out.Projects {
			if entry.ID == entryID {
				next := !entry.Selected
				out.Projects[i].Selected = next
				out.Projects[i].Bullets = setBullets(entry.Bullets, next)
			}
		}
	}
	return &out
}

// ToggleLeadership flips the selection of one leadership entry by id.
func ToggleLeadership(r *types.Resume, id string) *types.Resume {
	out := *r
	for _, entry := range r.Leadership {
		if entry.ID == id {
			out.Leadership = types.WithItemSelected(r.Leadership, id, !entry.Selected)
			break
		}
	}
	return &out
}

// SelectAll returns a document with every skill item, entry, bullet, and
// leadership entry selected.
func SelectAll(r *types.Resume) *types.Resume { return setAll(r, true) }

// DeselectAll returns a document with every selectable item deselected.
func DeselectAll(r *types.Resume) *types.Resume { return setAll(r, false) }

func setAll(r *types.Resume, v bool) *types.Resume {
	out := *r

	out.Skills = make([]types.SkillCategory, len(r.Skills))
	for i, cat := range r.Skills {
		items := make([]types.SkillItem, len(cat.Items))
		for j, item := range cat.Items {
			items[j] = item.WithSelected(v)
		}
		cat.Items = items
		out.Skills[i] = cat
	}

	out.Experience = make([]types.ExperienceEntry, len(r.Experience))
	for i, entry := range r.Experience {
		entry.Selected = v
		entry.Bullets = setBullets(entry.Bullets, v)
		out.Experience[i] = entry
	}

	out.Projects = make([]types.ProjectEntry, len(r.Projects))
	for i, entry := range r.Projects {
		entry.Selected = v
		entry.Bullets = setBullets(entry.Bullets, v)
		out.Projects[i] = entry
	}

	out.Leadership = make([]types.LeadershipEntry, len(r.Leadership))
	for i, entry := range r.Leadership {
		out.Leadership[i] = entry.WithSelected(v)
	}

	return &out
}

func flipBullet(bullets []types.Bullet, bulletID string) []types.Bullet {
	for _, b := range bullets {
		if b.ID == bulletID {
			return types.WithItemSelected(bullets, bulletID, !b.Selected)
		}
	}
	return bullets
}

func setBullets(bullets []types.Bullet, v bool) []types.Bullet {
	out := make([]types.Bullet, len(bullets))
	for i, b := range bullets {
		out[i] = b.WithSelected(v)
	}
	return out
}

func mapCategory(skills []types.SkillCategory, category string, fn func([]types.SkillItem) []types.SkillItem) []types.SkillCategory {
	out := make([]types.SkillCategory, len(skills))
	copy(out, skills)
	for i, cat := range out {
		if cat.Name == category {
			out[i].Items = fn(cat.Items)
		}
	}
	return out
}
