package types

// Identifiable is implemented by list items addressed by a stable identity:
// ids for entries and bullets, names for skills.
type Identifiable interface {
	Identity() string
}

// Selectable is implemented by list items that carry a selection flag and can
// produce a copy with the flag replaced.
type Selectable[T any] interface {
	Identifiable
	WithSelected(v bool) T
}

// WithItemSelected returns a new list equal to items except that the element
// matching identity has its selection flag replaced by value. If no element
// matches, the input list is returned unchanged; a toggle aimed at a
// since-removed item is a no-op, never an error.
func WithItemSelected[T Selectable[T]](items []T, identity string, value bool) []T {
	idx := -1
	for i, item := range items {
		if item.Identity() == identity {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	out[idx] = out[idx].WithSelected(value)
	return out
}

// ReorderByIdentity returns a new list with the same elements positioned by
// the rank of their identity in order. Elements whose identity is absent from
// order keep their original relative order and are appended after all ranked
// elements, so a stale or partial order list can never drop an item.
func ReorderByIdentity[T Identifiable](items []T, order []string) []T {
	rank := make(map[string]int, len(order))
	for i, id := range order {
		rank[id] = i
	}

	ranked := make([]T, 0, len(items))
	unranked := make([]T, 0)
	for _, item := range items {
		if _, ok := rank[item.Identity()]; ok {
			ranked = append(ranked, item)
		} else {
			unranked = append(unranked, item)
		}
	}

	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && rank[ranked[j].Identity()] < rank[ranked[j-1].Identity()]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	return append(ranked, unranked...)
}
