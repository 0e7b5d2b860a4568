package dispatch

import (
	"encoding/base64"

	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/protocol"
)

// cleanedHTMLLimit caps the sanitized variant of get_html. Raw HTML is
// never truncated.
const cleanedHTMLLimit = 200000

// getHTML serializes the page DOM. The reply is the bare HTML string, not
// wrapped in JSON. With the clean flag set, scripts, styles, and other
// noise are stripped while targeting attributes are preserved.
func (d *Dispatcher) getHTML(page engine.Page, req *protocol.Request) interface{} {
	html, err := page.Content()
	if err != nil {
		d.log.Errorf("get_html on page %q: %v", req.PageID, err)
		return protocol.ErrorResponse{Error: protocol.ErrReadContent}
	}

	if req.Clean {
		cleaned, err := cleanHTML(html, cleanedHTMLLimit)
		if err != nil {
			d.log.Errorf("get_html clean on page %q: %v", req.PageID, err)
			return protocol.ErrorResponse{Error: protocol.ErrReadContent}
		}
		return rawPayload(cleaned)
	}

	return rawPayload(html)
}

// getScreenshot captures the viewport and encodes it text-safe.
func (d *Dispatcher) getScreenshot(page engine.Page) interface{} {
	data, err := page.Screenshot()
	if err != nil {
		d.log.Errorf("get_screenshot: %v", err)
		return protocol.ErrorResponse{Error: protocol.ErrScreenshot}
	}

	return protocol.ScreenshotResponse{
		Screenshot: base64.StdEncoding.EncodeToString(data),
	}
}
