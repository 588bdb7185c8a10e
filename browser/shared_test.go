package browser

import (
	"bytes"
	"context"
	"encoding/xml"
	"os"
	"strings"
	"testing"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10"><rect x="0" y="0" width="20" height="10" fill="#fff"></rect></svg>`

func TestPage(t *testing.T) {
	page := Page([]byte(xml.Header + tinySVG + "\n"))

	if strings.Contains(page, "<?xml") {
		t.Errorf("XML declaration should be stripped")
	}
	if !strings.HasPrefix(page, "<!DOCTYPE html>") || !strings.HasSuffix(page, "</body></html>") {
		t.Errorf("unexpected page wrapper: %s", page)
	}
	if !strings.Contains(page, tinySVG) {
		t.Errorf("page does not embed the SVG")
	}
}

func TestRasterizeInvalidSize(t *testing.T) {
	bs := &BrowserSession{}
	if _, err := bs.Rasterize(context.Background(), []byte(tinySVG), 0, 10); err == nil {
		t.Errorf("expected an error for a zero width")
	}
}

// Launching a browser downloads Chromium on first use, so this only runs on request.
func TestRasterizeOnce(t *testing.T) {
	if os.Getenv("PIANOROLL_BROWSER_TESTS") == "" {
		t.Skip("set PIANOROLL_BROWSER_TESTS=1 to run headless browser tests")
	}

	png, err := RasterizeOnce(context.Background(), []byte(tinySVG), 20, 10)
	if err != nil {
		t.Fatalf("RasterizeOnce returned error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG")
	}
}
