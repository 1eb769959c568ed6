package store

import (
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// Action is a discrete state transition dispatched to the store. The set of
// actions below is the complete mutation surface of a session: nothing else
// touches SessionState.
type Action interface {
	isAction()
}

// SetLoading sets or clears the session's loading flag.
type SetLoading struct {
	Loading bool
}

// SetError replaces the session's error string. An empty message clears the
// error. Setting a non-empty error also clears the loading flag.
type SetError struct {
	Message string
}

// SetResume installs the fetched document and clears any previous error.
type SetResume struct {
	Resume *types.Resume
}

// SetJobAnalysis replaces the session's job analysis wholesale.
type SetJobAnalysis struct {
	Analysis *types.JobAnalysis
}

// ToggleSkill flips one skill item, matched by category and name.
type ToggleSkill struct {
	Category string
	Skill    string
}

// SetSkillCategory sets every item in a category to an explicit value.
type SetSkillCategory struct {
	Category string
	Selected bool
}

// ToggleBullet flips one bullet inside an entry of the given kind.
type ToggleBullet struct {
	Kind     types.EntryKind
	EntryID  string
	BulletID string
}

// ToggleEntry flips an entry and forces its bullets to the new value.
type ToggleEntry struct {
	Kind    types.EntryKind
	EntryID string
}

// ToggleLeadership flips one leadership entry by id.
type ToggleLeadership struct {
	ID string
}

// SelectAll selects every skill item, entry, bullet, and leadership entry.
type SelectAll struct{}

// DeselectAll deselects every selectable item.
type DeselectAll struct{}

// ApplySuggestions recomputes selection from the current analysis and a
// threshold. A no-op unless both a document and an analysis are present.
type ApplySuggestions struct {
	Threshold float64
}

// ReorderSection repositions a section's items by an ordered identity list.
// Items absent from the list keep their relative order at the end.
type ReorderSection struct {
	Section types.SectionName
	Order   []string
}

func (SetLoading) isAction()       {}
func (SetError) isAction()         {}
func (SetResume) isAction()        {}
func (SetJobAnalysis) isAction()   {}
func (ToggleSkill) isAction()      {}
func (SetSkillCategory) isAction() {}
func (ToggleBullet) isAction()     {}
func (ToggleEntry) isAction()      {}
func (ToggleLeadership) isAction() {}
func (SelectAll) isAction()        {}
func (DeselectAll) isAction()      {}
func (ApplySuggestions) isAction() {}
func (ReorderSection) isAction()   {}
