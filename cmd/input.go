package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"pianoroll/hap"
	"pianoroll/pattern"
	"pianoroll/span"
)

// Flags shared by every command that reads events.
var (
	inputFile     string
	sequenceText  string
	spanFlag      string
	highlightFlag string
	stepsFlag     string
	titleFlag     string
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Event document (YAML or JSON)")
	cmd.Flags().StringVarP(&sequenceText, "sequence", "s", "", `Step sequence, e.g. "a b ~ d"`)
	cmd.Flags().StringVar(&spanFlag, "span", "", `Visible window "begin,end" (default from document or "0,1")`)
	cmd.Flags().StringVar(&highlightFlag, "highlight", "", `Highlight window "begin,end"`)
	cmd.Flags().StringVar(&stepsFlag, "steps", "", "Axis ticks per cycle")
	cmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Diagram title")
}

// input is everything a layout needs, resolved from flags and document.
type input struct {
	Title     string
	Visible   span.Span
	Highlight *span.Span
	Steps     *big.Rat
	Haps      []hap.Hap[any]
}

func loadInput() (*input, error) {
	var doc *pattern.Document
	switch {
	case inputFile != "" && sequenceText != "":
		return nil, fmt.Errorf("use either --input or --sequence, not both")
	case inputFile != "":
		d, err := pattern.Load(inputFile)
		if err != nil {
			return nil, err
		}
		doc = d
	case sequenceText != "":
		doc = &pattern.Document{Sequence: sequenceText}
	default:
		return nil, fmt.Errorf("no events: pass --input <file> or --sequence <steps>")
	}

	if spanFlag != "" {
		doc.Span = splitPair(spanFlag)
	}
	if highlightFlag != "" {
		doc.Highlight = splitPair(highlightFlag)
	}
	if stepsFlag != "" {
		doc.Steps = stepsFlag
	}
	if titleFlag != "" {
		doc.Title = titleFlag
	}

	in := &input{Title: doc.DefaultTitle()}
	var err error
	if in.Visible, err = doc.Window(); err != nil {
		return nil, err
	}
	if in.Highlight, err = doc.HighlightSpan(); err != nil {
		return nil, err
	}
	if in.Steps, err = doc.StepCount(); err != nil {
		return nil, err
	}
	if in.Haps, err = doc.Haps(in.Visible); err != nil {
		return nil, err
	}
	return in, nil
}

// splitPair turns "a,b" into an interval. Malformed input is left for
// span parsing to reject.
func splitPair(s string) pattern.Interval {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return pattern.Interval(parts)
}
