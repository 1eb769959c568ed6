package store

import (
	"github.com/evanqhuang/resume-tailor/internal/selection"
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// reduce maps the current state and one action to the next state. Document
// actions are no-ops while no document is loaded; an unknown action returns
// the state unchanged.
func reduce(state SessionState, action Action) SessionState {
	switch a := action.(type) {
	case SetLoading:
		state.IsLoading = a.Loading
		return state

	case SetError:
		state.Err = a.Message
		if a.Message != "" {
			state.IsLoading = false
		}
		return state

	case SetResume:
		state.Resume = a.Resume
		state.Err = ""
		return state

	case SetJobAnalysis:
		state.Analysis = a.Analysis
		return state
	}

	if state.Resume == nil {
		return state
	}

	switch a := action.(type) {
	case ToggleSkill:
		state.Resume = selection.ToggleSkill(state.Resume, a.Category, a.Skill)
	case SetSkillCategory:
		state.Resume = selection.SetSkillCategory(state.Resume, a.Category, a.Selected)
	case ToggleBullet:
		state.Resume = selection.ToggleBullet(state.Resume, a.Kind, a.EntryID, a.BulletID)
	case ToggleEntry:
		state.Resume = selection.ToggleEntry(state.Resume, a.Kind, a.EntryID)
	case ToggleLeadership:
		state.Resume = selection.ToggleLeadership(state.Resume, a.ID)
	case SelectAll:
		state.Resume = selection.SelectAll(state.Resume)
	case DeselectAll:
		state.Resume = selection.DeselectAll(state.Resume)
	case ApplySuggestions:
		state.Resume = selection.ApplySuggestions(state.Resume, state.Analysis, a.Threshold)
	case ReorderSection:
		state.Resume = reorderSection(state.Resume, a.Section, a.Order)
	}
	return state
}

func reorderSection(r *types.Resume, section types.SectionName, order []string) *types.Resume {
	out := *r
	switch section {
	case types.SectionExperience:
		out.Experience = types.ReorderByIdentity(r.Experience, order)
	case types.SectionProjects:
		out.Projects = types.ReorderByIdentity(r.Projects, order)
	case types.SectionLeadership:
		out.Leadership = types.ReorderByIdentity(r.Leadership, order)
	default:
		return r
	}
	return &out
}
