package earley

import "slices"

// SituationSet is the set of situations at one chart position. It keeps
// insertion order so that iteration is deterministic.
type SituationSet struct {
	items    []Situation
	index    map[Key]struct{}
	position int
}

func newSituationSet(pos int) *SituationSet {
	return &SituationSet{
		index:    make(map[Key]struct{}),
		position: pos,
	}
}

// Add inserts s and reports whether the set grew.
func (s *SituationSet) Add(sit Situation) bool {
	key := sit.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = struct{}{}
	s.items = append(s.items, sit)
	return true
}

func (s *SituationSet) Contains(sit Situation) bool {
	_, ok := s.index[sit.Key()]
	return ok
}

func (s *SituationSet) Len() int {
	return len(s.items)
}

// Position returns the chart position of the set.
func (s *SituationSet) Position() int {
	return s.position
}

// Situations returns the situations in insertion order. The result is a
// copy and does not change when the set grows.
func (s *SituationSet) Situations() []Situation {
	return slices.Clone(s.items)
}

// snapshot returns the current contents without copying. Add only appends,
// so later insertions never show up in a snapshot.
func (s *SituationSet) snapshot() []Situation {
	return s.items[:len(s.items):len(s.items)]
}
