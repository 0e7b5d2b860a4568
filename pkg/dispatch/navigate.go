package dispatch

import (
	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/protocol"
)

// navigate loads the requested URL. The navigation policy runs before any
// engine call; a denied URL reports the same payload as a failed
// navigation so the wire surface stays per-command.
func (d *Dispatcher) navigate(page engine.Page, req *protocol.Request) interface{} {
	if d.policy != nil && !d.policy.Allows(req.URL) {
		d.log.Warnf("navigate %q blocked by policy on page %q", req.URL, req.PageID)
		return protocol.ErrorResponse{Error: protocol.ErrNavigate}
	}

	if err := page.Navigate(req.URL); err != nil {
		d.log.Errorf("navigate %q on page %q: %v", req.URL, req.PageID, err)
		return protocol.ErrorResponse{Error: protocol.ErrNavigate}
	}
	return nil
}
