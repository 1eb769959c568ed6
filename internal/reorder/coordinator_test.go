package reorder

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanqhuang/resume-tailor/internal/store"
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// stubPersister records patches and fails on demand.
type stubPersister struct {
	patches []map[types.SectionName][]string
	err     error
	// pendingOrder captures the document order observed at persist time, to
	// prove the optimistic apply happened before the call.
	observe      func() []string
	observedWhen []string
}

func (p *stubPersister) SaveOrder(_ context.Context, patch map[types.SectionName][]string) error {
	p.patches = append(p.patches, patch)
	if p.observe != nil {
		p.observedWhen = p.observe()
	}
	return p.err
}

func projectsResume() *types.Resume {
	return &types.Resume{
		Projects: []types.ProjectEntry{{ID: "A"}, {ID: "B"}, {ID: "C"}},
	}
}

func newFixture(t *testing.T, persister Persister) (*store.Store, *Coordinator) {
	t.Helper()
	s := store.New()
	s.Dispatch(store.SetResume{Resume: projectsResume()})
	c := New(types.SectionProjects, s, persister, nil)
	return s, c
}

func TestMoveAppliesNewOrderAndCommits(t *testing.T) {
	p := &stubPersister{}
	s, c := newFixture(t, p)

	// Drag B onto A's position.
	outcome := c.Move(context.Background(), "B", "A")
	assert.Equal(t, StateCommitted, outcome)
	assert.Equal(t, StateIdle, c.State())

	ids := s.State().Resume.SectionIDs(types.SectionProjects)
	assert.Equal(t, []string{"B", "A", "C"}, ids)

	require.Len(t, p.patches, 1)
	assert.Equal(t, []string{"B", "A", "C"}, p.patches[0][types.SectionProjects])
}

func TestMoveOptimisticApplyPrecedesPersist(t *testing.T) {
	p := &stubPersister{}
	s, c := newFixture(t, p)
	p.observe = func() []string {
		return s.State().Resume.SectionIDs(types.SectionProjects)
	}

	c.Move(context.Background(), "C", "A")
	// By the time the persister ran, the document already showed the new order.
	assert.Equal(t, []string{"C", "A", "B"}, p.observedWhen)
}

func TestMoveRollsBackOnPersistFailure(t *testing.T) {
	// Scenario: projects [A,B,C], drag B onto A, persistence fails, order
	// reverts to exactly [A,B,C].
	p := &stubPersister{err: errors.New("order store unavailable")}
	s, c := newFixture(t, p)

	outcome := c.Move(context.Background(), "B", "A")
	assert.Equal(t, StateRolledBack, outcome)
	assert.Equal(t, StateIdle, c.State())

	ids := s.State().Resume.SectionIDs(types.SectionProjects)
	assert.Equal(t, []string{"A", "B", "C"}, ids)

	// Rollback is silent: no error lands in session state.
	assert.Empty(t, s.State().Err)
}

func TestMoveSameIdentityIsNoOp(t *testing.T) {
	p := &stubPersister{}
	s, c := newFixture(t, p)

	outcome := c.Move(context.Background(), "B", "B")
	assert.Equal(t, StateIdle, outcome)
	assert.Empty(t, p.patches)
	assert.Equal(t, []string{"A", "B", "C"}, s.State().Resume.SectionIDs(types.SectionProjects))
}

func TestMoveUnresolvedIdentityIsNoOp(t *testing.T) {
	p := &stubPersister{}
	s, c := newFixture(t, p)

	assert.Equal(t, StateIdle, c.Move(context.Background(), "ghost", "A"))
	assert.Equal(t, StateIdle, c.Move(context.Background(), "A", "ghost"))
	assert.Empty(t, p.patches)
	assert.Equal(t, []string{"A", "B", "C"}, s.State().Resume.SectionIDs(types.SectionProjects))
}

func TestMoveWithoutDocumentIsNoOp(t *testing.T) {
	p := &stubPersister{}
	s := store.New()
	c := New(types.SectionProjects, s, p, nil)

	assert.Equal(t, StateIdle, c.Move(context.Background(), "A", "B"))
	assert.Empty(t, p.patches)
}

func TestMoveIsPermutation(t *testing.T) {
	ids := []string{"A", "B", "C", "D", "E"}
	for from := range ids {
		for to := range ids {
			if from == to {
				continue
			}
			p := &stubPersister{}
			s := store.New()
			entries := make([]types.ProjectEntry, len(ids))
			for i, id := range ids {
				entries[i] = types.ProjectEntry{ID: id}
			}
			s.Dispatch(store.SetResume{Resume: &types.Resume{Projects: entries}})
			c := New(types.SectionProjects, s, p, nil)

			c.Move(context.Background(), ids[from], ids[to])

			got := s.State().Resume.SectionIDs(types.SectionProjects)
			require.Len(t, got, len(ids))
			sorted := append([]string(nil), got...)
			sort.Strings(sorted)
			assert.Equal(t, []string{"A", "B", "C", "D", "E"}, sorted,
				"move %s -> %s must keep the same identity multiset", ids[from], ids[to])
		}
	}
}

func TestArrayMoveSemantics(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}

	// Remove source, insert at the target's position.
	assert.Equal(t, []string{"B", "A", "C", "D"}, arrayMove(ids, 1, 0))
	assert.Equal(t, []string{"B", "C", "A", "D"}, arrayMove(ids, 0, 2))
	assert.Equal(t, []string{"D", "A", "B", "C"}, arrayMove(ids, 3, 0))
	assert.Equal(t, []string{"B", "C", "D", "A"}, arrayMove(ids, 0, 3))

	// Input untouched.
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
}
