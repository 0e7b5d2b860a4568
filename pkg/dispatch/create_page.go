package dispatch

import "github.com/marionet/marionet/pkg/protocol"

// createPage asks the engine for a fresh page and binds it under the
// requested identifier. An identifier that is already bound is rejected
// before any engine call; a rebinding race between the check and the
// insert is caught by the registry's atomic Register.
func (d *Dispatcher) createPage(req *protocol.Request) interface{} {
	if _, exists := d.registry.Resolve(req.PageID); exists {
		return protocol.ErrorResponse{Error: protocol.ErrPageExists}
	}

	page, err := d.engine.NewPage()
	if err != nil {
		d.log.Errorf("create_page %q: %v", req.PageID, err)
		return protocol.ErrorResponse{Error: protocol.ErrCreatePageFailed}
	}

	if err := d.registry.Register(req.PageID, page); err != nil {
		// Another connection claimed the identifier first. The freshly
		// opened page stays with the browser until process exit; there is
		// no close command in the protocol.
		d.log.Warnf("create_page %q lost registration race", req.PageID)
		return protocol.ErrorResponse{Error: protocol.ErrPageExists}
	}

	d.log.Infof("page %q created", req.PageID)
	return nil
}
