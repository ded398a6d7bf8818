package achievements

import "time"

// Book holds the unlock state of every known achievement.
type Book struct {
	order  []string
	states map[string]State
}

// NewBook merges persisted state with the catalog. Persisted entries are
// kept as-is, including IDs the catalog no longer knows. Catalog entries
// without persisted state start locked.
func NewBook(catalog []Definition, persisted []State) *Book {
	b := &Book{states: make(map[string]State, len(catalog))}
	for _, s := range persisted {
		if s.ID == "" {
			continue
		}
		if _, dup := b.states[s.ID]; dup {
			continue
		}
		if !s.Unlocked {
			s.UnlockedAt = nil
		}
		b.order = append(b.order, s.ID)
		b.states[s.ID] = s
	}
	for _, d := range catalog {
		if _, ok := b.states[d.ID]; ok {
			continue
		}
		b.order = append(b.order, d.ID)
		b.states[d.ID] = State{ID: d.ID}
	}
	return b
}

// Unlocked reports whether id is unlocked.
func (b *Book) Unlocked(id string) bool {
	return b.states[id].Unlocked
}

// State returns the state for id.
func (b *Book) State(id string) (State, bool) {
	s, ok := b.states[id]
	return s, ok
}

// States returns every state in merge order, ready for persistence.
func (b *Book) States() []State {
	out := make([]State, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.states[id])
	}
	return out
}

// UnlockedCount returns how many achievements are unlocked.
func (b *Book) UnlockedCount() int {
	n := 0
	for _, s := range b.states {
		if s.Unlocked {
			n++
		}
	}
	return n
}

// Reset re-locks every achievement.
func (b *Book) Reset() {
	for id := range b.states {
		b.states[id] = State{ID: id}
	}
}

func (b *Book) unlock(id string, at time.Time) bool {
	s, ok := b.states[id]
	if ok && s.Unlocked {
		return false
	}
	if !ok {
		b.order = append(b.order, id)
	}
	b.states[id] = State{ID: id, Unlocked: true, UnlockedAt: &at}
	return true
}
