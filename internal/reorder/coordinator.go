// Package reorder coordinates one section's drag-initiated ordering: it
// computes the new order from a move event, applies it to the document
// optimistically, persists it remotely, and rolls the section back to the
// captured pre-move order when persistence fails.
package reorder

import (
	"context"

	"go.uber.org/zap"

	"github.com/evanqhuang/resume-tailor/internal/store"
	"github.com/evanqhuang/resume-tailor/internal/types"
)

// State is the coordinator's position in the reorder protocol. A move runs
// Idle -> Pending -> Committed or RolledBack and returns to Idle.
type State string

// Protocol states.
const (
	StateIdle       State = "idle"
	StatePending    State = "pending"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
)

// Persister writes a partial section-order patch to the remote order store.
// The write is an idempotent overwrite on the remote side, which is why a
// failed attempt is compensated by rollback rather than retried.
type Persister interface {
	SaveOrder(ctx context.Context, patch map[types.SectionName][]string) error
}

// Coordinator manages reordering for a single section. It holds no document
// state of its own beyond the transient previous-order copy kept for the
// duration of one in-flight persistence call.
//
// Overlapping moves on the same section are not serialized: if a second move
// starts while a persist is in flight, completion order decides the final
// document order. Callers are expected to issue one move at a time.
type Coordinator struct {
	section   types.SectionName
	store     *store.Store
	persister Persister
	log       *zap.Logger

	state State
}

// New creates a coordinator for one reorderable section.
func New(section types.SectionName, st *store.Store, persister Persister, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{
		section:   section,
		store:     st,
		persister: persister,
		log:       log,
		state:     StateIdle,
	}
}

// Section returns the section this coordinator manages.
func (c *Coordinator) Section() types.SectionName { return c.section }

// State returns the coordinator's current protocol state. Outside an
// in-flight Move this is always StateIdle.
func (c *Coordinator) State() State { return c.state }

// Move handles a completed drag naming the moved identity and the identity
// whose position it takes. The new order is applied to the document before
// the persistence call is issued, so the user sees it immediately; on
// persistence failure the section reverts to exactly the pre-move order and
// the error is only logged. The returned state is the terminal outcome of
// this move: StateIdle for a no-op, otherwise StateCommitted or
// StateRolledBack.
func (c *Coordinator) Move(ctx context.Context, activeID, overID string) State {
	if activeID == overID {
		return StateIdle
	}

	state := c.store.State()
	if state.Resume == nil {
		return StateIdle
	}

	previousOrder := state.Resume.SectionIDs(c.section)
	from, to := indexOf(previousOrder, activeID), indexOf(previousOrder, overID)
	if from < 0 || to < 0 {
		return StateIdle
	}

	newOrder := arrayMove(previousOrder, from, to)

	// Optimistic apply: visible before persistence begins.
	c.state = StatePending
	c.store.Dispatch(store.ReorderSection{Section: c.section, Order: newOrder})

	patch := map[types.SectionName][]string{c.section: newOrder}
	if err := c.persister.SaveOrder(ctx, patch); err != nil {
		c.log.Warn("order persistence failed, rolling back",
			zap.String("section", string(c.section)),
			zap.Error(err),
		)
		c.store.Dispatch(store.ReorderSection{Section: c.section, Order: previousOrder})
		c.state = StateIdle
		return StateRolledBack
	}

	c.state = StateIdle
	return StateCommitted
}

// arrayMove removes the element at from and reinserts it at to, where both
// indexes refer to the original slice.
func arrayMove(ids []string, from, to int) []string {
	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)
	out = append(out[:to], append([]string{ids[from]}, out[to:]...)...)
	return out
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
