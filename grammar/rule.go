package grammar

import (
	"slices"
	"strings"
)

// Rule is an immutable production Left -> Right.
type Rule struct {
	left  Symbol
	right []Symbol
	key   string
}

// NewRule returns the rule left -> right. An empty right side is the empty
// production.
func NewRule(left Symbol, right ...Symbol) Rule {
	r := Rule{left: left, right: slices.Clone(right)}

	var b strings.Builder
	left.key(&b)
	b.WriteString("->")
	for _, s := range r.right {
		s.key(&b)
	}
	r.key = b.String()
	return r
}

// Left returns the left-hand side.
func (r Rule) Left() Symbol {
	return r.left
}

// Right returns a copy of the right-hand side.
func (r Rule) Right() []Symbol {
	return slices.Clone(r.right)
}

// Len returns the length of the right-hand side.
func (r Rule) Len() int {
	return len(r.right)
}

// At returns the i-th symbol of the right-hand side.
func (r Rule) At(i int) Symbol {
	return r.right[i]
}

// IsEmpty reports whether r is an empty production.
func (r Rule) IsEmpty() bool {
	return len(r.right) == 0
}

// Key returns a comparable value that is equal for two rules exactly when
// both sides are equal.
func (r Rule) Key() string {
	return r.key
}

// Equal reports whether both sides of r and o match.
func (r Rule) Equal(o Rule) bool {
	return r.key == o.key
}

func (r Rule) String() string {
	return r.left.String() + "->" + Join(r.right)
}
