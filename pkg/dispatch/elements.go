package dispatch

import (
	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/protocol"
)

// getInteractiveElements runs the in-page query. Indices are assigned
// 0..n-1 in document order inside the page, so rerunning against an
// unchanged DOM yields the same indices.
func (d *Dispatcher) getInteractiveElements(page engine.Page) interface{} {
	items, err := page.InteractiveElements()
	if err != nil {
		d.log.Errorf("get_interactive_elements: %v", err)
		return protocol.ErrorResponse{Error: protocol.ErrCollectElements}
	}

	if items == nil {
		items = []engine.ElementInfo{}
	}
	return protocol.ElementsResponse{Items: items}
}
