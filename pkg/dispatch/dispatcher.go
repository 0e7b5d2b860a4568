// Package dispatch routes decoded protocol requests to command handlers.
// Each handler performs exactly one engine operation (or a short fixed
// sequence) against the page resolved from the request's identifier and
// shapes the result into a response payload.
package dispatch

import (
	"encoding/json"
	"time"

	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/logging"
	"github.com/marionet/marionet/pkg/pages"
	"github.com/marionet/marionet/pkg/protocol"
)

// rawPayload marks a response that goes onto the wire as-is instead of
// being JSON-encoded. get_html replies with the bare HTML string.
type rawPayload string

// Dispatcher resolves page identifiers and routes commands. It holds the
// only references to the registry and the engine; nothing else mutates
// page state.
type Dispatcher struct {
	registry    *pages.Registry
	engine      engine.Engine
	policy      URLPolicy
	log         *logging.Logger
	typingDelay time.Duration
}

// URLPolicy decides whether navigate may load a URL. A nil policy allows
// everything.
type URLPolicy interface {
	Allows(url string) bool
}

// New creates a dispatcher. typingDelay is the fixed inter-keystroke delay
// used by input_text and type_text.
func New(registry *pages.Registry, eng engine.Engine, policy URLPolicy, log *logging.Logger, typingDelay time.Duration) *Dispatcher {
	return &Dispatcher{
		registry:    registry,
		engine:      eng,
		policy:      policy,
		log:         log,
		typingDelay: typingDelay,
	}
}

// Handle processes one raw inbound frame and returns the encoded reply.
// The second return is false when the command produces no reply (implicit
// acknowledgment).
func (d *Dispatcher) Handle(raw []byte) ([]byte, bool) {
	req, err := protocol.Decode(raw)
	if err != nil {
		d.log.Warnf("undecodable frame: %v", err)
		return encode(protocol.ErrorResponse{Error: protocol.ErrParse})
	}

	payload := d.Dispatch(req)
	if payload == nil {
		return nil, false
	}
	if html, ok := payload.(rawPayload); ok {
		return []byte(html), true
	}
	return encode(payload)
}

func encode(payload interface{}) ([]byte, bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		// Payload types are all marshalable structs; this is unreachable
		// short of a programming error.
		return []byte(`{"error":"Error while encoding response"}`), true
	}
	return data, true
}

// Dispatch resolves the request's page identifier and routes to the
// matching handler. create_page is exempt from resolution because its
// identifier is not expected to exist yet. The returned payload is nil for
// commands that acknowledge implicitly.
func (d *Dispatcher) Dispatch(req *protocol.Request) interface{} {
	if req.Message == protocol.MessageCreatePage {
		return d.createPage(req)
	}

	page, ok := d.registry.Resolve(req.PageID)
	if !ok {
		d.log.Debugf("unknown page %q for %s", req.PageID, req.Message)
		return protocol.ErrorResponse{Error: protocol.ErrPageNotFound}
	}

	switch req.Message {
	case protocol.MessageNavigate:
		return d.navigate(page, req)
	case protocol.MessageGetHTML:
		return d.getHTML(page, req)
	case protocol.MessageClick:
		return d.click(page, req)
	case protocol.MessageInputText:
		return d.inputText(page, req)
	case protocol.MessageTypeText:
		return d.typeText(page, req)
	case protocol.MessageMoveMouse:
		return d.moveMouse(page, req)
	case protocol.MessageGetScreenshot:
		return d.getScreenshot(page)
	case protocol.MessageGetInteractiveElements:
		return d.getInteractiveElements(page)
	case protocol.MessageObserve:
		return d.observe(page)
	default:
		d.log.Debugf("unknown message %q", req.Message)
		return protocol.ErrorResponse{Error: protocol.ErrNoMessage}
	}
}
