// Package grammarfile loads grammar definitions from files. The format is
// chosen by extension: .ebnf files are EBNF, .yaml and .yml files are YAML
// documents and everything else uses the line-based rule notation.
package grammarfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/earley/grammar"
	"github.com/dhamidi/earley/grammar/ebnfgrammar"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown grammar format")
	ErrNoStart       = errors.New("EBNF grammars need a start production")
)

// Format is a grammar file format.
type Format int

const (
	Text Format = iota
	YAML
	EBNF
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case YAML:
		return "yaml"
	case EBNF:
		return "ebnf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for _, f := range []Format{Text, YAML, EBNF} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ebnf":
		return EBNF
	case ".yaml", ".yml":
		return YAML
	}
	return Text
}

// Load reads the grammar definition in path, in the format implied by its
// extension. start overrides the start symbol declared in the file; it is
// required for EBNF files.
func Load(path, start string) (*grammar.Definition, error) {
	return LoadFormat(path, FormatOf(path), start)
}

// LoadFormat is like Load but reads path in the given format whatever its
// extension.
func LoadFormat(path string, format Format, start string) (*grammar.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Read(f, path, format, start)
}

// Read reads a grammar definition in the given format from r. name is used
// in error messages only.
func Read(r io.Reader, name string, format Format, start string) (*grammar.Definition, error) {
	var def *grammar.Definition
	var err error

	switch format {
	case EBNF:
		if start == "" {
			return nil, fmt.Errorf("read %s: %w", name, ErrNoStart)
		}
		def, err = ebnfgrammar.Parse(name, r, start)
	case YAML:
		def, err = ReadYAML(r)
	case Text:
		def, err = grammar.Read(r)
	default:
		return nil, fmt.Errorf("read %s: %w", name, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	// EBNF conversion already resolved start to its production.
	if start != "" && format != EBNF {
		def.SetStart(grammar.Sym(start))
	}
	return def, nil
}

// document is the YAML form of a grammar.
type document struct {
	Start        string      `yaml:"start"`
	Terminals    []string    `yaml:"terminals"`
	NonTerminals []string    `yaml:"nonterminals"`
	Rules        []yaml.Node `yaml:"rules"`
}

// ReadYAML reads a YAML grammar document:
//
//	start: S
//	terminals: [a, b]
//	nonterminals: [S]
//	rules:
//	  - S->aSbS
//	  - S->
//
// Rules use grammar.ParseRule notation.
func ReadYAML(r io.Reader) (*grammar.Definition, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	def := &grammar.Definition{
		Terminals:    grammar.Symbols(doc.Terminals...),
		NonTerminals: grammar.Symbols(doc.NonTerminals...),
	}
	if doc.Start != "" {
		def.SetStart(grammar.Sym(doc.Start))
	}

	var errs grammar.SyntaxErrors
	for _, node := range doc.Rules {
		if node.Kind != yaml.ScalarNode {
			errs = append(errs, &grammar.SyntaxError{Line: node.Line, Err: errors.New("rule must be a string")})
			continue
		}
		rule, err := grammar.ParseRule(node.Value)
		if err != nil {
			errs = append(errs, &grammar.SyntaxError{Line: node.Line, Err: err})
			continue
		}
		def.AddRule(rule, node.Line)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("rules: %w", errs)
	}
	return def, nil
}
