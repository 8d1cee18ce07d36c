package earley

import (
	"fmt"
	"strings"

	"github.com/dhamidi/earley/grammar"
)

// Situation is an Earley item: a rule with a dot marking how much of its
// right-hand side has been matched, and the chart position where matching
// began.
type Situation struct {
	rule   grammar.Rule
	dot    int
	origin int
}

// Key identifies a situation structurally. Two situations are equal
// exactly when their keys are equal.
type Key struct {
	rule   string
	dot    int
	origin int
}

// NewSituation returns the situation (rule, dot, origin). It panics if dot
// is outside [0, rule.Len()].
func NewSituation(rule grammar.Rule, dot, origin int) Situation {
	if dot < 0 || dot > rule.Len() {
		panic(fmt.Sprintf("earley: dot %d out of range for %s", dot, rule))
	}
	return Situation{rule: rule, dot: dot, origin: origin}
}

func (s Situation) Rule() grammar.Rule { return s.rule }
func (s Situation) Dot() int           { return s.dot }
func (s Situation) Origin() int        { return s.origin }

// Completed reports whether the dot is at the end of the rule.
func (s Situation) Completed() bool {
	return s.dot == s.rule.Len()
}

// NextSymbol returns the symbol right after the dot. ok is false when the
// situation is completed.
func (s Situation) NextSymbol() (sym grammar.Symbol, ok bool) {
	if s.Completed() {
		return grammar.Symbol{}, false
	}
	return s.rule.At(s.dot), true
}

// Advanced returns the situation with the dot moved past the next symbol.
// Advancing a completed situation is an internal invariant violation and
// panics.
func (s Situation) Advanced() Situation {
	if s.Completed() {
		panic(fmt.Sprintf("earley: advance of completed situation %s", s))
	}
	s.dot++
	return s
}

func (s Situation) Key() Key {
	return Key{rule: s.rule.Key(), dot: s.dot, origin: s.origin}
}

func (s Situation) Equal(o Situation) bool {
	return s.Key() == o.Key()
}

// String renders the situation as A->α•β;origin.
func (s Situation) String() string {
	right := s.rule.Right()
	var b strings.Builder
	b.WriteString(s.rule.Left().String())
	b.WriteString("->")
	b.WriteString(grammar.Join(right[:s.dot]))
	b.WriteString("•")
	b.WriteString(grammar.Join(right[s.dot:]))
	fmt.Fprintf(&b, ";%d", s.origin)
	return b.String()
}
