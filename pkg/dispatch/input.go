package dispatch

import (
	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/protocol"
)

// click dispatches a click on the element matched by the selector.
func (d *Dispatcher) click(page engine.Page, req *protocol.Request) interface{} {
	if err := page.Click(req.Selector); err != nil {
		d.log.Errorf("click %q on page %q: %v", req.Selector, req.PageID, err)
		return protocol.ErrorResponse{Error: protocol.ErrClick}
	}
	return protocol.ClickResponse{Success: true}
}

// inputText types into the selector-matched element with the configured
// inter-keystroke delay, then optionally presses Enter.
func (d *Dispatcher) inputText(page engine.Page, req *protocol.Request) interface{} {
	if err := page.TypeInto(req.Selector, req.Text, d.typingDelay); err != nil {
		d.log.Errorf("input_text into %q on page %q: %v", req.Selector, req.PageID, err)
		return protocol.ErrorResponse{Error: protocol.ErrInputText}
	}

	if req.Enter {
		if err := page.PressEnter(); err != nil {
			d.log.Errorf("input_text enter on page %q: %v", req.PageID, err)
			return protocol.ErrorResponse{Error: protocol.ErrInputText}
		}
	}
	return nil
}

// typeText streams keystrokes to whatever element holds focus, then
// optionally presses Enter.
func (d *Dispatcher) typeText(page engine.Page, req *protocol.Request) interface{} {
	if err := page.TypeKeys(req.Text, d.typingDelay); err != nil {
		d.log.Errorf("type_text on page %q: %v", req.PageID, err)
		return protocol.ErrorResponse{Error: protocol.ErrTypeText}
	}

	if req.Enter {
		if err := page.PressEnter(); err != nil {
			d.log.Errorf("type_text enter on page %q: %v", req.PageID, err)
			return protocol.ErrorResponse{Error: protocol.ErrTypeText}
		}
	}
	return nil
}

// moveMouse clicks at the coordinates when the click flag is set and only
// moves the pointer otherwise.
func (d *Dispatcher) moveMouse(page engine.Page, req *protocol.Request) interface{} {
	var err error
	if req.Click {
		err = page.ClickAt(req.X, req.Y)
	} else {
		err = page.MoveMouse(req.X, req.Y)
	}
	if err != nil {
		d.log.Errorf("move_mouse (%v,%v) click=%v on page %q: %v", req.X, req.Y, req.Click, req.PageID, err)
		return protocol.ErrorResponse{Error: protocol.ErrMoveMouse}
	}
	return nil
}
