package selection

import (
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// ApplySuggestions recomputes the whole document's selection from a relevance
// score map and a threshold in [0,100]. Skills are looked up by name, bullets
// and leadership entries by id; a missing score counts as 0. Bullets are
// stamped with their score for display regardless of the outcome, and each
// entry's own selection is derived as "any bullet selected" rather than
// scored independently.
//
// The function is pure and total: given the same document, analysis, and
// threshold it always yields the same output, and either input being nil
// returns the document unchanged (the triggering control is only enabled when
// both are present).
func ApplySuggestions(r *types.Resume, analysis *types.JobAnalysis, threshold float64) *types.Resume {
	if r == nil || analysis == nil {
		return r
	}
	scores := analysis.Scores

	out := *r

	out.Skills = make([]types.SkillCategory, len(r.Skills))
	for i, cat := range r.Skills {
		items := make([]types.SkillItem, len(cat.Items))
		for j, item := range cat.Items {
			items[j] = item.WithSelected(scores[item.Name] >= threshold)
		}
		cat.Items = items
		out.Skills[i] = cat
	}

	out.Experience = make([]types.ExperienceEntry, len(r.Experience))
	for i, entry := range r.Experience {
		entry.Bullets, entry.Selected = scoreBullets(entry.Bullets, scores, threshold)
		out.Experience[i] = entry
	}

	out.Projects = make([]types.ProjectEntry, len(r.Projects))
	for i, entry := range r.Projects {
		entry.Bullets, entry.Selected = scoreBullets(entry.Bullets, scores, threshold)
		out.Projects[i] = entry
	}

	out.Leadership = make([]types.LeadershipEntry, len(r.Leadership))
	for i, entry := range r.Leadership {
		out.Leadership[i] = entry.WithSelected(scores[entry.ID] >= threshold)
	}

	return &out
}

// scoreBullets applies the threshold to each bullet, stamps its relevance
// score, and reports whether any bullet ended up selected.
func scoreBullets(bullets []types.Bullet, scores map[string]float64, threshold float64) ([]types.Bullet, bool) {
	out := make([]types.Bullet, len(bullets))
	any := false
	for i, b := range bullets {
		score := scores[b.ID]
		b.Selected = score >= threshold
		b.RelevanceScore = &score
		if b.Selected {
			any = true
		}
		out[i] = b
	}
	return out, any
}
