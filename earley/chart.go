package earley

import (
	"slices"

	"github.com/dhamidi/earley/grammar"
)

// Chart holds one situation set per input position, 0 through len(word).
type Chart struct {
	word   []grammar.Symbol
	sets   []*SituationSet
	accept Situation
}

func newChart(g *grammar.Grammar, word []grammar.Symbol) *Chart {
	c := &Chart{
		word: slices.Clone(word),
		sets: make([]*SituationSet, len(word)+1),
	}
	for i := range c.sets {
		c.sets[i] = newSituationSet(i)
	}

	start := NewSituation(g.StartRule(), 0, 0)
	c.sets[0].Add(start)
	c.accept = start.Advanced()
	return c
}

// Len returns the number of situation sets, len(word)+1.
func (c *Chart) Len() int {
	return len(c.sets)
}

// Set returns the situation set at position i.
func (c *Chart) Set(i int) *SituationSet {
	return c.sets[i]
}

// Word returns the recognized word.
func (c *Chart) Word() []grammar.Symbol {
	return slices.Clone(c.word)
}

// Accepted reports whether the completed start situation # -> S•, anchored
// at position 0, is in the last set.
func (c *Chart) Accepted() bool {
	return c.sets[len(c.sets)-1].Contains(c.accept)
}
