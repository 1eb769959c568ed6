package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithItemSelected(t *testing.T) {
	bullets := []Bullet{
		{ID: "b1", Text: "first"},
		{ID: "b2", Text: "second", Selected: true},
	}

	out := WithItemSelected(bullets, "b1", true)
	assert.True(t, out[0].Selected)
	assert.True(t, out[1].Selected)

	// Input untouched
	assert.False(t, bullets[0].Selected)
}

func TestWithItemSelectedMissingIdentityIsNoOp(t *testing.T) {
	bullets := []Bullet{{ID: "b1"}}

	out := WithItemSelected(bullets, "gone", true)
	assert.Equal(t, bullets, out)
	assert.False(t, out[0].Selected)
}

func TestWithItemSelectedSkillsKeyedByName(t *testing.T) {
	items := []SkillItem{{Name: "Go"}, {Name: "Python"}}

	out := WithItemSelected(items, "Python", true)
	assert.False(t, out[0].Selected)
	assert.True(t, out[1].Selected)
}

func TestReorderByIdentity(t *testing.T) {
	entries := []LeadershipEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out := ReorderByIdentity(entries, []string{"c", "a", "b"})
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "b", out[2].ID)
}

func TestReorderByIdentityPartialOrderAppendsUnranked(t *testing.T) {
	entries := []LeadershipEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	// Stale order list knows only c and a; b and d keep their relative order
	// and land at the end.
	out := ReorderByIdentity(entries, []string{"c", "a"})
	require.Len(t, out, 4)
	assert.Equal(t, "c", out[0].ID)
	assert.Equal(t, "a", out[1].ID)
	assert.Equal(t, "b", out[2].ID)
	assert.Equal(t, "d", out[3].ID)
}

func TestReorderByIdentityIsPermutation(t *testing.T) {
	entries := []ExperienceEntry{{ID: "x"}, {ID: "y"}, {ID: "z"}}

	out := ReorderByIdentity(entries, []string{"z", "nonexistent", "x"})
	require.Len(t, out, len(entries))

	seen := map[string]int{}
	for _, e := range out {
		seen[e.ID]++
	}
	assert.Equal(t, map[string]int{"x": 1, "y": 1, "z": 1}, seen)
}

func TestSectionIDs(t *testing.T) {
	r := &Resume{
		Experience: []ExperienceEntry{{ID: "e1"}, {ID: "e2"}},
		Projects:   []ProjectEntry{{ID: "p1"}},
		Leadership: []LeadershipEntry{{ID: "l1"}},
	}

	assert.Equal(t, []string{"e1", "e2"}, r.SectionIDs(SectionExperience))
	assert.Equal(t, []string{"p1"}, r.SectionIDs(SectionProjects))
	assert.Equal(t, []string{"l1"}, r.SectionIDs(SectionLeadership))
	assert.Nil(t, r.SectionIDs("skills"))
}
