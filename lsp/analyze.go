package lsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/dhamidi/earley/grammar"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "earley"

// Analysis is the result of reading one grammar document.
type Analysis struct {
	Definition  *grammar.Definition
	Diagnostics []protocol.Diagnostic
	lines       []string
}

// Analyze reads text as a grammar in rule notation and reports syntax
// errors and undeclared symbols.
func Analyze(text string) *Analysis {
	a := &Analysis{
		lines:       strings.Split(text, "\n"),
		Diagnostics: []protocol.Diagnostic{},
	}

	def, err := grammar.Read(strings.NewReader(text))
	var syntax grammar.SyntaxErrors
	if errors.As(err, &syntax) {
		for _, e := range syntax {
			a.report(e.Line, protocol.DiagnosticSeverityError, e.Err.Error())
		}
	} else if err != nil {
		a.report(1, protocol.DiagnosticSeverityError, err.Error())
	}
	if def == nil {
		def = &grammar.Definition{}
	}
	a.Definition = def

	for _, u := range def.Undeclared() {
		a.report(u.Line, protocol.DiagnosticSeverityWarning,
			fmt.Sprintf("symbol %q is neither a terminal nor a non-terminal and never matches", u.Symbol))
	}
	return a
}

// report adds a diagnostic covering the whole 1-based line.
func (a *Analysis) report(line int, severity protocol.DiagnosticSeverity, message string) {
	idx := max(line-1, 0)
	end := 0
	if idx < len(a.lines) {
		end = utf16Len(strings.TrimRight(a.lines[idx], "\r"))
	}
	source := diagnosticSource
	a.Diagnostics = append(a.Diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(idx)},
			End:   protocol.Position{Line: protocol.UInteger(idx), Character: protocol.UInteger(end)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	})
}

// SymbolAt returns the grammar symbol under the 0-based line and UTF-16
// character offset, if the line is a rule.
func (a *Analysis) SymbolAt(line, character int) (grammar.Symbol, bool) {
	if line < 0 || line >= len(a.lines) {
		return grammar.Symbol{}, false
	}
	text := strings.TrimRight(a.lines[line], "\r")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, "//") {
		return grammar.Symbol{}, false
	}
	rule, err := grammar.ParseRule(trimmed)
	if err != nil {
		return grammar.Symbol{}, false
	}

	arrow, width := strings.Index(text, "->"), len("->")
	if arrow < 0 {
		arrow, width = strings.Index(text, "→"), len("→")
	}
	rightStart := arrow + width
	rightEnd := len(strings.TrimRight(text, " \t"))

	col := 0
	for i, r := range text {
		w := len(utf16.Encode([]rune{r}))
		if character < col+w {
			switch {
			case i < arrow && !unicode.IsSpace(r):
				return rule.Left(), true
			case i >= rightStart && i < rightEnd && !unicode.IsSpace(r):
				return grammar.Sym(string(r)), true
			}
			return grammar.Symbol{}, false
		}
		col += w
	}
	return grammar.Symbol{}, false
}

// Describe returns a markdown description of sym in the analysed grammar.
func (a *Analysis) Describe(sym grammar.Symbol) string {
	g := a.Definition.Grammar()
	var b strings.Builder
	switch {
	case g.IsNonTerminal(sym):
		fmt.Fprintf(&b, "**%s** non-terminal", sym)
		if sym == g.UserStart() {
			b.WriteString(" (start)")
		}
		b.WriteString("\n\n```\n")
		for _, r := range g.RulesFor(sym) {
			b.WriteString(r.String())
			b.WriteString("\n")
		}
		b.WriteString("```")
	case g.IsTerminal(sym):
		fmt.Fprintf(&b, "**%s** terminal", sym)
	default:
		fmt.Fprintf(&b, "**%s** undeclared: never matches", sym)
	}
	return b.String()
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
