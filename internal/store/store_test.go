package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

func testResume() *types.Resume {
	return &types.Resume{
		Skills: []types.SkillCategory{
			{Name: "languages", Items: []types.SkillItem{
				{Name: "Python"},
				{Name: "Go", Selected: true},
			}},
		},
		Experience: []types.ExperienceEntry{
			{ID: "exp1", Bullets: []types.Bullet{{ID: "b1"}, {ID: "b2"}}},
		},
		Projects: []types.ProjectEntry{
			{ID: "projA"}, {ID: "projB"}, {ID: "projC"},
		},
		Leadership: []types.LeadershipEntry{{ID: "lead1"}},
	}
}

func TestNewStoreStartsEmpty(t *testing.T) {
	s := New()
	state := s.State()
	assert.Nil(t, state.Resume)
	assert.Nil(t, state.Analysis)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Err)
}

func TestSetResumeClearsError(t *testing.T) {
	s := New()
	s.Dispatch(SetError{Message: "fetch failed"})
	require.Equal(t, "fetch failed", s.State().Err)

	s.Dispatch(SetResume{Resume: testResume()})
	state := s.State()
	assert.NotNil(t, state.Resume)
	assert.Empty(t, state.Err)
}

func TestSetErrorClearsLoading(t *testing.T) {
	s := New()
	s.Dispatch(SetLoading{Loading: true})
	s.Dispatch(SetError{Message: "boom"})

	state := s.State()
	assert.Equal(t, "boom", state.Err)
	assert.False(t, state.IsLoading)
}

func TestSetErrorEmptyClears(t *testing.T) {
	s := New()
	s.Dispatch(SetError{Message: "boom"})
	s.Dispatch(SetError{})
	assert.Empty(t, s.State().Err)
}

func TestErrorReplacesNotAccumulates(t *testing.T) {
	s := New()
	s.Dispatch(SetError{Message: "first"})
	s.Dispatch(SetError{Message: "second"})
	assert.Equal(t, "second", s.State().Err)
}

func TestDocumentActionsWithoutDocumentAreNoOps(t *testing.T) {
	s := New()
	before := s.State()

	s.Dispatch(ToggleSkill{Category: "languages", Skill: "Go"})
	s.Dispatch(SelectAll{})
	s.Dispatch(ReorderSection{Section: types.SectionProjects, Order: []string{"projB"}})

	assert.Equal(t, before, s.State())
}

func TestToggleActionsFlowThroughReducer(t *testing.T) {
	s := New()
	s.Dispatch(SetResume{Resume: testResume()})

	s.Dispatch(ToggleSkill{Category: "languages", Skill: "Python"})
	assert.True(t, s.State().Resume.Skills[0].Items[0].Selected)

	s.Dispatch(ToggleEntry{Kind: types.KindExperience, EntryID: "exp1"})
	entry := s.State().Resume.Experience[0]
	assert.True(t, entry.Selected)
	for _, b := range entry.Bullets {
		assert.True(t, b.Selected)
	}

	s.Dispatch(ToggleBullet{Kind: types.KindExperience, EntryID: "exp1", BulletID: "b2"})
	assert.False(t, s.State().Resume.Experience[0].Bullets[1].Selected)

	s.Dispatch(ToggleLeadership{ID: "lead1"})
	assert.True(t, s.State().Resume.Leadership[0].Selected)
}

func TestSelectAllThenDeselectAll(t *testing.T) {
	s := New()
	s.Dispatch(SetResume{Resume: testResume()})
	s.Dispatch(ToggleBullet{Kind: types.KindExperience, EntryID: "exp1", BulletID: "b1"})

	s.Dispatch(SelectAll{})
	r := s.State().Resume
	assert.True(t, r.Skills[0].Items[0].Selected)
	assert.True(t, r.Experience[0].Selected)
	assert.True(t, r.Experience[0].Bullets[0].Selected)
	assert.True(t, r.Experience[0].Bullets[1].Selected)
	assert.True(t, r.Projects[0].Selected)
	assert.True(t, r.Leadership[0].Selected)

	s.Dispatch(DeselectAll{})
	r = s.State().Resume
	assert.False(t, r.Skills[0].Items[1].Selected)
	assert.False(t, r.Experience[0].Selected)
	assert.False(t, r.Leadership[0].Selected)
}

func TestApplySuggestionsRequiresAnalysis(t *testing.T) {
	s := New()
	s.Dispatch(SetResume{Resume: testResume()})
	before := s.State().Resume

	// No analysis loaded: silent no-op.
	s.Dispatch(ApplySuggestions{Threshold: 70})
	assert.Equal(t, before, s.State().Resume)

	s.Dispatch(SetJobAnalysis{Analysis: &types.JobAnalysis{
		Scores: map[string]float64{"Go": 90, "b1": 80},
	}})
	s.Dispatch(ApplySuggestions{Threshold: 70})

	r := s.State().Resume
	assert.True(t, r.Skills[0].Items[1].Selected)
	assert.True(t, r.Experience[0].Bullets[0].Selected)
	assert.True(t, r.Experience[0].Selected)
}

func TestSetJobAnalysisReplacesWholesale(t *testing.T) {
	s := New()
	s.Dispatch(SetJobAnalysis{Analysis: &types.JobAnalysis{
		Keywords: []string{"go"},
		Scores:   map[string]float64{"a": 1},
	}})
	s.Dispatch(SetJobAnalysis{Analysis: &types.JobAnalysis{
		Keywords: []string{"python"},
	}})

	analysis := s.State().Analysis
	require.NotNil(t, analysis)
	assert.Equal(t, []string{"python"}, analysis.Keywords)
	assert.Empty(t, analysis.Scores)
}

func TestReorderSection(t *testing.T) {
	s := New()
	s.Dispatch(SetResume{Resume: testResume()})

	s.Dispatch(ReorderSection{
		Section: types.SectionProjects,
		Order:   []string{"projB", "projA", "projC"},
	})

	ids := s.State().Resume.SectionIDs(types.SectionProjects)
	assert.Equal(t, []string{"projB", "projA", "projC"}, ids)
}

func TestSubscribersNotifiedSynchronously(t *testing.T) {
	s := New()

	var got []SessionState
	unsub := s.Subscribe(func(state SessionState) {
		got = append(got, state)
	})

	s.Dispatch(SetLoading{Loading: true})
	require.Len(t, got, 1)
	assert.True(t, got[0].IsLoading)

	unsub()
	s.Dispatch(SetLoading{Loading: false})
	assert.Len(t, got, 1)
}

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestUnknownActionIsNoOp(t *testing.T) {
	s := New()
	s.Dispatch(SetResume{Resume: testResume()})
	before := s.State()

	s.Dispatch(unknownAction{})
	assert.Equal(t, before, s.State())
}
