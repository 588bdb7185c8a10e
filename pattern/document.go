// Package pattern loads the events a diagram is drawn from.
//
// Events come either from a document listing already-evaluated haps or from
// a plain step sequence such as "a b c d", which divides each cycle evenly.
package pattern

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pianoroll/hap"
	"pianoroll/span"
)

// Interval is a [begin, end] pair written as two rational strings.
type Interval []string

func (iv Interval) span() (span.Span, error) {
	if len(iv) != 2 {
		return span.Span{}, fmt.Errorf("%w: want [begin, end], got %d values", span.ErrInvalidInput, len(iv))
	}
	return span.NewFromStrings(iv[0], iv[1])
}

// EventDoc is one hap as written in a document.
type EventDoc struct {
	Value any      `yaml:"value" json:"value"`
	Part  Interval `yaml:"part" json:"part"`
	Whole Interval `yaml:"whole,omitempty" json:"whole,omitempty"`
}

// Document describes a diagram: the window to draw and the events in it.
// JSON documents parse too, since JSON is a subset of YAML.
type Document struct {
	Title     string     `yaml:"title,omitempty" json:"title,omitempty"`
	Span      Interval   `yaml:"span,omitempty" json:"span,omitempty"`
	Highlight Interval   `yaml:"highlight,omitempty" json:"highlight,omitempty"`
	Steps     string     `yaml:"steps,omitempty" json:"steps,omitempty"`
	Sequence  string     `yaml:"sequence,omitempty" json:"sequence,omitempty"`
	Events    []EventDoc `yaml:"events,omitempty" json:"events,omitempty"`
}

// Load reads a document from a YAML or JSON file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.Sequence == "" && len(doc.Events) == 0 {
		return nil, ErrNoEvents
	}
	return &doc, nil
}

// Window returns the visible span, [0, 1] when none is given.
func (d *Document) Window() (span.Span, error) {
	if len(d.Span) == 0 {
		return span.Unit, nil
	}
	s, err := d.Span.span()
	if err != nil {
		return span.Span{}, fmt.Errorf("span: %w", err)
	}
	return s, nil
}

// HighlightSpan returns the highlight window, or nil when none is given.
func (d *Document) HighlightSpan() (*span.Span, error) {
	if len(d.Highlight) == 0 {
		return nil, nil
	}
	s, err := d.Highlight.span()
	if err != nil {
		return nil, fmt.Errorf("highlight: %w", err)
	}
	return &s, nil
}

// StepCount returns the axis step count. A sequence document defaults to its
// number of steps; otherwise nil.
func (d *Document) StepCount() (*big.Rat, error) {
	if d.Steps != "" {
		steps, err := span.Parse(d.Steps)
		if err != nil {
			return nil, fmt.Errorf("steps: %w", err)
		}
		return steps, nil
	}
	if d.Sequence != "" {
		return big.NewRat(int64(NewSequence(d.Sequence).Steps()), 1), nil
	}
	return nil, nil
}

// Haps converts the document into haps over window. Sequence documents are
// queried over the window; event documents are returned as written.
func (d *Document) Haps(window span.Span) ([]hap.Hap[any], error) {
	if d.Sequence != "" {
		seq := NewSequence(d.Sequence).Query(window)
		haps := make([]hap.Hap[any], len(seq))
		for i, h := range seq {
			haps[i] = hap.New[any](h.Whole, h.Part, h.Value)
		}
		return haps, nil
	}

	haps := make([]hap.Hap[any], 0, len(d.Events))
	for i, ev := range d.Events {
		part, err := ev.Part.span()
		if err != nil {
			return nil, fmt.Errorf("event %d part: %w", i, err)
		}

		var whole *span.Span
		if len(ev.Whole) > 0 {
			w, err := ev.Whole.span()
			if err != nil {
				return nil, fmt.Errorf("event %d whole: %w", i, err)
			}
			whole = &w
		}

		h := hap.New(whole, part, ev.Value)
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		haps = append(haps, h)
	}
	return haps, nil
}

// DefaultTitle quotes the sequence when the document has no title.
func (d *Document) DefaultTitle() string {
	if d.Title != "" || d.Sequence == "" {
		return d.Title
	}
	return fmt.Sprintf("%q", strings.TrimSpace(d.Sequence))
}
