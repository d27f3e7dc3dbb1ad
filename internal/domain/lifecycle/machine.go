package lifecycle

import "slices"

// Machine describes the status set of one entity kind and the transition
// table used in strict mode.
type Machine[S ~string] struct {
	entity  string
	initial S
	states  []S
	next    map[S][]S
}

func NewMachine[S ~string](entity string, initial S, states []S, next map[S][]S) *Machine[S] {
	return &Machine[S]{entity: entity, initial: initial, states: states, next: next}
}

func (m *Machine[S]) Entity() string {
	return m.entity
}

// Initial is the status every new entity starts in.
func (m *Machine[S]) Initial() S {
	return m.initial
}

func (m *Machine[S]) States() []S {
	return slices.Clone(m.states)
}

func (m *Machine[S]) Valid(s S) bool {
	return slices.Contains(m.states, s)
}

// Terminal reports whether s has no outgoing edge in the strict table.
func (m *Machine[S]) Terminal(s S) bool {
	return len(m.next[s]) == 0
}

// Allows reports whether from -> to is an edge of the strict table.
// Re-applying the current status is always allowed.
func (m *Machine[S]) Allows(from, to S) bool {
	if from == to {
		return true
	}
	return slices.Contains(m.next[from], to)
}
