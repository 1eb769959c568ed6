package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanqhuang/resume-tailor/internal/types"
)

func TestBuildSelectionSet(t *testing.T) {
	r := sampleResume()

	set := BuildSelectionSet(r)
	assert.Equal(t, []string{"Go", "React"}, set.Skills)
	// exp1 is unselected, so neither it nor its bullets appear.
	assert.Empty(t, set.Experience)
	// proj1 is selected along with its selected bullet.
	assert.Equal(t, []string{"proj1", "proj1-b1"}, set.Projects)
	assert.Empty(t, set.Leadership)
}

func TestBuildSelectionSetSkipsUnselectedBullets(t *testing.T) {
	r := sampleResume()
	r = ToggleEntry(r, types.KindExperience, "exp1")                // entry + both bullets on
	r = ToggleBullet(r, types.KindExperience, "exp1", "exp1-b2")    // one bullet back off

	set := BuildSelectionSet(r)
	assert.Equal(t, []string{"exp1", "exp1-b1"}, set.Experience)
}

func TestBuildSelectionSetNilDocument(t *testing.T) {
	set := BuildSelectionSet(nil)
	assert.Empty(t, set.Skills)
	assert.Empty(t, set.Experience)
	assert.Empty(t, set.Projects)
	assert.Empty(t, set.Leadership)
}

func TestSelectionSetIDSet(t *testing.T) {
	set := types.SelectionSet{
		Skills:     []string{"Go"},
		Experience: []string{"exp1", "exp1-b1"},
		Leadership: []string{"lead1"},
	}

	ids := set.IDSet()
	assert.True(t, ids["Go"])
	assert.True(t, ids["exp1"])
	assert.True(t, ids["exp1-b1"])
	assert.True(t, ids["lead1"])
	assert.False(t, ids["proj1"])
}
