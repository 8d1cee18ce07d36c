// Package format renders recognition results and charts.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/earley/earley"
)

// Result is the outcome of recognizing one word.
type Result struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
}

type Encoder interface {
	Encode(r Result) error
	EncodeChart(c *earley.Chart) error
}

// NewEncoder returns the encoder named name, "text" or "json".
func NewEncoder(name string, w io.Writer, opts TextOptions) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w, opts), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
