package cmd

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pianoroll/browser"
	"pianoroll/config"
	"pianoroll/diagram"
	"pianoroll/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render events to an SVG or PNG diagram",
	Long: `Render events to a piano-roll diagram.

The output format follows the file extension: .svg is written directly, .png is
rasterized with a headless browser (downloaded on first use).

Examples:
  pianoroll render -s "a b c d" --span 0,2 --highlight 1/2,3/2 --axis -o abcd.svg
  pianoroll render -i events.yaml -c render.yaml -o events.png`,
	Args: cobra.NoArgs,
	RunE: runRenderCommand,
}

var (
	configFile string
	renderOut  string
	showAxis   bool
)

func init() {
	addInputFlags(renderCmd)
	renderCmd.Flags().StringVarP(&configFile, "config", "c", "", "Render config (YAML)")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "Output file (defaults to pianoroll_unixtime.svg)")
	renderCmd.Flags().BoolVar(&showAxis, "axis", false, "Draw a tick axis below the rows")
}

func runRenderCommand(cmd *cobra.Command, args []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	d, err := diagram.Layout(diagram.Options{
		Geometry:  cfg.Geometry(),
		Visible:   in.Visible,
		Highlight: in.Highlight,
		Steps:     in.Steps,
		Title:     in.Title,
		Axis:      showAxis,
	}, in.Haps)
	if err != nil {
		return fmt.Errorf("error laying out diagram: %w", err)
	}

	filename := renderOut
	if filename == "" {
		filename = fmt.Sprintf("pianoroll_%d.svg", time.Now().Unix())
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		if err := writePNG(cmd.Context(), d, cfg, filename); err != nil {
			return err
		}
	case ".svg":
		if err := render.WriteToFile(d, cfg.Style(), filename); err != nil {
			return fmt.Errorf("error writing SVG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (use .svg or .png)", filepath.Ext(filename))
	}

	fmt.Printf("Rendered %d events in %d rows to %s\n", len(in.Haps), d.Rows, filename)
	return nil
}

func writePNG(ctx context.Context, d *diagram.Diagram, cfg *config.Config, filename string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var svg bytes.Buffer
	if err := render.SVG(&svg, d, cfg.Style()); err != nil {
		return fmt.Errorf("error rendering SVG: %w", err)
	}

	fmt.Printf("Rasterizing %dx%d diagram...\n", int(d.Width), int(d.Height))
	png, err := browser.RasterizeOnce(ctx, svg.Bytes(), int(math.Ceil(d.Width)), int(math.Ceil(d.Height)))
	if err != nil {
		return fmt.Errorf("error rasterizing diagram: %w", err)
	}

	if err := os.WriteFile(filename, png, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	return nil
}
