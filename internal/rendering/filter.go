package rendering

import (
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// Filter returns a copy of the resume containing only the items named by the
// selection set. Skill categories with no surviving items are dropped, and
// entries keep only the bullets the set names. Contact info and education
// always survive.
func Filter(r *types.Resume, sel types.SelectionSet) *types.Resume {
	if r == nil {
		return nil
	}

	skills := make(map[string]bool, len(sel.Skills))
	for _, name := range sel.Skills {
		skills[name] = true
	}
	ids := sel.IDSet()

	out := &types.Resume{
		Contact:   r.Contact,
		Summary:   r.Summary,
		Education: r.Education,
	}

	for _, cat := range r.Skills {
		var items []types.SkillItem
		for _, item := range cat.Items {
			if skills[item.Name] {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			out.Skills = append(out.Skills, types.SkillCategory{Name: cat.Name, Items: items})
		}
	}

	for _, entry := range r.Experience {
		if !ids[entry.ID] {
			continue
		}
		kept := entry
		kept.Bullets = filterBullets(entry.Bullets, ids)
		out.Experience = append(out.Experience, kept)
	}

	for _, entry := range r.Projects {
		if !ids[entry.ID] {
			continue
		}
		kept := entry
		kept.Bullets = filterBullets(entry.Bullets, ids)
		out.Projects = append(out.Projects, kept)
	}

	for _, entry := range r.Leadership {
		if ids[entry.ID] {
			out.Leadership = append(out.Leadership, entry)
		}
	}

	return out
}

func filterBullets(bullets []types.Bullet, ids map[string]bool) []types.Bullet {
	var kept []types.Bullet
	for _, b := range bullets {
		if ids[b.ID] {
			kept = append(kept, b)
		}
	}
	return kept
}
