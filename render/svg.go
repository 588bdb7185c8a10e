// Package render writes laid-out diagrams as SVG documents.
//
// The document is built from encoding/xml structs and marshalled in one
// pass; primitives keep the order the layout emitted them in, which is also
// their paint order.
package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"pianoroll/diagram"
)

// Style controls colours and strokes.
type Style struct {
	Background  string
	Bright      string
	Dim         string
	FontFamily  string
	FontSize    int
	StrokeWidth int
	Dash        int
}

// DefaultStyle is white on a dark background with grey context strips.
func DefaultStyle() Style {
	return Style{
		Background:  "#1e2029",
		Bright:      "#ffffff",
		Dim:         "#6f778c",
		FontFamily:  "monospace",
		FontSize:    14,
		StrokeWidth: 2,
		Dash:        5,
	}
}

const (
	onsetOpacity    = "0.2"
	fragmentOpacity = "0.067"
)

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Items   []any
}

type svgRect struct {
	XMLName     xml.Name `xml:"rect"`
	X           string   `xml:"x,attr"`
	Y           string   `xml:"y,attr"`
	Width       string   `xml:"width,attr"`
	Height      string   `xml:"height,attr"`
	Fill        string   `xml:"fill,attr"`
	FillOpacity string   `xml:"fill-opacity,attr,omitempty"`
	Stroke      string   `xml:"stroke,attr,omitempty"`
}

type svgLine struct {
	XMLName     xml.Name `xml:"line"`
	X1          string   `xml:"x1,attr"`
	Y1          string   `xml:"y1,attr"`
	X2          string   `xml:"x2,attr"`
	Y2          string   `xml:"y2,attr"`
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth string   `xml:"stroke-width,attr"`
	DashArray   string   `xml:"stroke-dasharray,attr,omitempty"`
}

type svgText struct {
	XMLName          xml.Name `xml:"text"`
	X                string   `xml:"x,attr"`
	Y                string   `xml:"y,attr"`
	Fill             string   `xml:"fill,attr"`
	FontFamily       string   `xml:"font-family,attr"`
	FontSize         string   `xml:"font-size,attr"`
	TextAnchor       string   `xml:"text-anchor,attr,omitempty"`
	DominantBaseline string   `xml:"dominant-baseline,attr,omitempty"`
	Content          string   `xml:",chardata"`
}

// SVG writes d as a standalone SVG document.
func SVG(w io.Writer, d *diagram.Diagram, style Style) error {
	doc := svgDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   num(d.Width),
		Height:  num(d.Height),
		ViewBox: fmt.Sprintf("0 0 %s %s", num(d.Width), num(d.Height)),
	}

	if style.Background != "" {
		doc.Items = append(doc.Items, svgRect{
			X: "0", Y: "0", Width: num(d.Width), Height: num(d.Height), Fill: style.Background,
		})
	}

	for _, p := range d.Primitives {
		switch p := p.(type) {
		case diagram.Line:
			line := svgLine{
				X1: num(p.X1), Y1: num(p.Y1), X2: num(p.X2), Y2: num(p.Y2),
				Stroke:      style.color(p.Tone),
				StrokeWidth: strconv.Itoa(style.StrokeWidth),
			}
			if p.Dashed {
				line.DashArray = strconv.Itoa(style.Dash)
			}
			doc.Items = append(doc.Items, line)
		case diagram.Box:
			opacity := fragmentOpacity
			if p.Onset {
				opacity = onsetOpacity
			}
			doc.Items = append(doc.Items, svgRect{
				X: num(p.X), Y: num(p.Y), Width: num(p.Width), Height: num(p.Height),
				Fill:        style.color(p.Tone),
				FillOpacity: opacity,
				Stroke:      "none",
			})
		case diagram.Label:
			doc.Items = append(doc.Items, svgText{
				X: num(p.X), Y: num(p.Y),
				Fill:             style.color(p.Tone),
				FontFamily:       style.FontFamily,
				FontSize:         strconv.Itoa(style.FontSize),
				TextAnchor:       anchor(p.Anchor),
				DominantBaseline: baseline(p.Baseline),
				Content:          p.Text,
			})
		default:
			return fmt.Errorf("unsupported primitive %T", p)
		}
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal SVG: %w", err)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(output); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// WriteToFile renders d into an SVG file.
func WriteToFile(d *diagram.Diagram, style Style, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := SVG(f, d, style); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s Style) color(t diagram.Tone) string {
	if t == diagram.Bright {
		return s.Bright
	}
	return s.Dim
}

func anchor(a diagram.Anchor) string {
	if a == diagram.AnchorMiddle {
		return "middle"
	}
	return ""
}

func baseline(b diagram.Baseline) string {
	switch b {
	case diagram.BaselineMiddle:
		return "middle"
	case diagram.BaselineHanging:
		return "hanging"
	}
	return ""
}

// num formats a coordinate without trailing zeros.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
