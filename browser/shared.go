// Package browser rasterizes SVG diagrams to PNG with a headless browser.
package browser

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds a single rasterization.
const DefaultTimeout = 30 * time.Second

// BrowserSession represents a headless browser with one open page
type BrowserSession struct {
	Launcher *launcher.Launcher
	Browser  *rod.Browser
	Page     *rod.Page
}

// NewBrowserSession launches a headless browser and opens a blank page
func NewBrowserSession() (*BrowserSession, error) {
	l := launcher.New().Headless(true)
	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("error launching browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("error connecting to browser: %w", err)
	}

	// Create page with panic recovery
	var page *rod.Page
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "Error creating page: %v\n", r)
			}
		}()
		page = browser.MustPage()
	}()

	if page == nil {
		browser.Close()
		l.Cleanup()
		return nil, fmt.Errorf("failed to create page")
	}

	return &BrowserSession{
		Launcher: l,
		Browser:  browser,
		Page:     page,
	}, nil
}

// Close cleans up the browser session
func (bs *BrowserSession) Close() {
	if bs.Page != nil {
		bs.Page.Close()
	}
	if bs.Browser != nil {
		bs.Browser.Close()
	}
	if bs.Launcher != nil {
		bs.Launcher.Cleanup()
	}
}

// Rasterize renders an SVG document of the given pixel size and returns it
// as PNG bytes.
func (bs *BrowserSession) Rasterize(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", width, height)
	}

	page := bs.Page.Context(ctx)

	err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("error setting viewport: %w", err)
	}

	if err := page.SetDocumentContent(Page(svg)); err != nil {
		return nil, fmt.Errorf("error loading diagram: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("error waiting for page load: %w", err)
	}

	png, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("error taking screenshot: %w", err)
	}
	return png, nil
}

// Page wraps an SVG document in a minimal HTML page with no margins, so the
// diagram's top-left corner lands on the viewport origin.
func Page(svg []byte) string {
	svg = bytes.TrimSpace(bytes.TrimPrefix(svg, []byte(xml.Header)))
	return "<!DOCTYPE html><html><head><meta charset=\"utf-8\">" +
		"<style>html,body{margin:0;padding:0;background:transparent}</style></head><body>" +
		string(svg) +
		"</body></html>"
}

// RasterizeOnce launches a browser, renders one SVG and shuts it down.
func RasterizeOnce(ctx context.Context, svg []byte, width, height int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	bs, err := NewBrowserSession()
	if err != nil {
		return nil, err
	}
	defer bs.Close()

	return bs.Rasterize(ctx, svg, width, height)
}
