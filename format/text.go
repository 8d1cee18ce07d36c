package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/earley/earley"
)

// TextOptions configures the text encoder.
type TextOptions struct {
	Yes string
	No  string
	// ShowWord prefixes every answer with the word it belongs to.
	ShowWord bool
}

// DefaultTextOptions answers with the literals Yes and No.
func DefaultTextOptions() TextOptions {
	return TextOptions{Yes: "Yes", No: "No"}
}

type TextEncoder struct {
	w    io.Writer
	opts TextOptions
}

func NewTextEncoder(w io.Writer, opts TextOptions) *TextEncoder {
	return &TextEncoder{w: w, opts: opts}
}

func (e *TextEncoder) answer(accepted bool) string {
	if accepted {
		return e.opts.Yes
	}
	return e.opts.No
}

func (e *TextEncoder) Encode(r Result) error {
	var err error
	if e.opts.ShowWord {
		_, err = fmt.Fprintf(e.w, "%q: %s\n", r.Word, e.answer(r.Accepted))
	} else {
		_, err = fmt.Fprintln(e.w, e.answer(r.Accepted))
	}
	return err
}

// EncodeChart writes every situation set, one situation per line.
func (e *TextEncoder) EncodeChart(c *earley.Chart) error {
	for i := 0; i < c.Len(); i++ {
		set := c.Set(i)
		if _, err := fmt.Fprintf(e.w, "set %d (%d):\n", i, set.Len()); err != nil {
			return err
		}
		for _, s := range set.Situations() {
			if _, err := fmt.Fprintf(e.w, "  %s\n", s); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(e.w, "accepted: %s\n", e.answer(c.Accepted()))
	return err
}
