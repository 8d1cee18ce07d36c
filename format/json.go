package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/earley/earley"
	"github.com/dhamidi/earley/grammar"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(r Result) error {
	return e.write(r)
}

func (e *JSONEncoder) EncodeChart(c *earley.Chart) error {
	return e.write(chartToJSON(c))
}

func (e *JSONEncoder) write(v any) error {
	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

type jsonChart struct {
	Word     []string  `json:"word"`
	Accepted bool      `json:"accepted"`
	Sets     []jsonSet `json:"sets"`
}

type jsonSet struct {
	Position   int             `json:"position"`
	Situations []jsonSituation `json:"situations"`
}

type jsonSituation struct {
	Rule      string `json:"rule"`
	Dot       int    `json:"dot"`
	Origin    int    `json:"origin"`
	Completed bool   `json:"completed,omitempty"`
	Text      string `json:"text"`
}

func chartToJSON(c *earley.Chart) jsonChart {
	data := jsonChart{
		Word:     symbolNames(c.Word()),
		Accepted: c.Accepted(),
		Sets:     make([]jsonSet, c.Len()),
	}
	for i := range data.Sets {
		set := c.Set(i)
		js := jsonSet{Position: i, Situations: []jsonSituation{}}
		for _, s := range set.Situations() {
			js.Situations = append(js.Situations, jsonSituation{
				Rule:      s.Rule().String(),
				Dot:       s.Dot(),
				Origin:    s.Origin(),
				Completed: s.Completed(),
				Text:      s.String(),
			})
		}
		data.Sets[i] = js
	}
	return data
}

func symbolNames(syms []grammar.Symbol) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.String()
	}
	return names
}
