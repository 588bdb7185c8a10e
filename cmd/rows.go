package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pianoroll/diagram"
	"pianoroll/hap"
)

var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Print how events are packed into rows",
	Long: `Print the rows the layout would stack events into, one line per row,
with each event's part and a marker for fragment edges ("(" / ")" for a true
onset / offset, "<" / ">" where the event continues beyond its part).`,
	Args: cobra.NoArgs,
	RunE: runRowsCommand,
}

func init() {
	addInputFlags(rowsCmd)
}

func runRowsCommand(cmd *cobra.Command, args []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	haps := hap.IntersectAll(in.Visible, in.Haps)
	fmt.Fprintf(out, "Window %s: %d events\n", in.Visible, len(haps))
	printRows(out, hap.SplitIntoRows(haps))
	fmt.Fprintf(out, "Max overlap: %d\n", hap.MaxOverlap(haps))
	return nil
}

func printRows[V any](w io.Writer, rows [][]hap.Hap[V]) {
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, h := range row {
			cells[j] = describeHap(h)
		}
		fmt.Fprintf(w, "Row %d: %s\n", i+1, strings.Join(cells, "  "))
	}
}

func describeHap[V any](h hap.Hap[V]) string {
	open, closeMark := "<", ">"
	if h.HasOnset() {
		open = "("
	}
	if h.HasOffset() {
		closeMark = ")"
	}
	return fmt.Sprintf("%s%s %s-%s%s", open, diagram.LabelOf(h.Value),
		h.Part.Begin().RatString(), h.Part.End().RatString(), closeMark)
}
