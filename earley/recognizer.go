// Package earley recognizes words of arbitrary context-free grammars with
// the Earley chart algorithm.
package earley

import (
	"github.com/dhamidi/earley/grammar"
	"github.com/tliron/commonlog"
)

// Observer is called after Scan (round 0) and after every Complete/Predict
// round at position pos, with the chart under construction.
type Observer func(c *Chart, pos, round int)

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithLogger sets the logger used for per-position debug traces.
func WithLogger(log commonlog.Logger) Option {
	return func(r *Recognizer) {
		r.log = log
	}
}

// WithObserver installs fn as the chart observer.
func WithObserver(fn Observer) Option {
	return func(r *Recognizer) {
		r.observe = fn
	}
}

// Recognizer tests words for membership in the language of a grammar.
// It holds no per-word state and can be used from several goroutines.
type Recognizer struct {
	grammar *grammar.Grammar
	log     commonlog.Logger
	observe Observer
}

// New returns a recognizer for g.
func New(g *grammar.Grammar, opts ...Option) *Recognizer {
	r := &Recognizer{
		grammar: g,
		log:     commonlog.GetLogger("earley"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recognize reports whether word belongs to the language of g.
func Recognize(g *grammar.Grammar, word []grammar.Symbol) bool {
	return New(g).Recognize(word)
}

// Grammar returns the grammar r recognizes.
func (r *Recognizer) Grammar() *grammar.Grammar {
	return r.grammar
}

// Recognize reports whether word belongs to the language of the grammar.
func (r *Recognizer) Recognize(word []grammar.Symbol) bool {
	return r.Chart(word).Accepted()
}

// Chart builds the complete chart for word. Positions are settled in
// increasing order; a settled position is never revisited.
func (r *Recognizer) Chart(word []grammar.Symbol) *Chart {
	b := &builder{
		grammar: r.grammar,
		chart:   newChart(r.grammar, word),
		changed: make([]bool, len(word)+1),
	}
	b.changed[0] = true

	for pos := 0; pos <= len(word); pos++ {
		b.scan(pos)
		r.notify(b.chart, pos, 0)

		round := 0
		for b.changed[pos] {
			b.changed[pos] = false
			b.complete(pos)
			b.predict(pos)
			round++
			r.notify(b.chart, pos, round)
		}

		if r.log.AllowLevel(commonlog.Debug) {
			r.log.Debug("position settled",
				"position", pos,
				"situations", b.chart.sets[pos].Len(),
				"rounds", round)
		}
	}

	return b.chart
}

func (r *Recognizer) notify(c *Chart, pos, round int) {
	if r.observe != nil {
		r.observe(c, pos, round)
	}
}

// builder is the state of one chart construction.
type builder struct {
	grammar *grammar.Grammar
	chart   *Chart
	changed []bool
}

func (b *builder) add(pos int, sit Situation) {
	if b.chart.sets[pos].Add(sit) {
		b.changed[pos] = true
	}
}

// scan advances situations of the previous set over word[pos-1].
func (b *builder) scan(pos int) {
	if pos == 0 {
		return
	}
	want := b.chart.word[pos-1]
	for _, sit := range b.chart.sets[pos-1].snapshot() {
		next, ok := sit.NextSymbol()
		if ok && b.grammar.IsTerminal(next) && next == want {
			b.add(pos, sit.Advanced())
		}
	}
}

// complete advances the situations waiting on the left side of every
// completed situation at pos.
func (b *builder) complete(pos int) {
	for _, done := range b.chart.sets[pos].snapshot() {
		if !done.Completed() {
			continue
		}
		left := done.Rule().Left()
		for _, waiting := range b.chart.sets[done.Origin()].snapshot() {
			next, ok := waiting.NextSymbol()
			if ok && next == left {
				b.add(pos, waiting.Advanced())
			}
		}
	}
}

// predict adds fresh situations for every non-terminal expected at pos.
func (b *builder) predict(pos int) {
	for _, sit := range b.chart.sets[pos].snapshot() {
		next, ok := sit.NextSymbol()
		if !ok || !b.grammar.IsNonTerminal(next) {
			continue
		}
		for _, rule := range b.grammar.RulesFor(next) {
			b.add(pos, NewSituation(rule, 0, pos))
		}
	}
}
