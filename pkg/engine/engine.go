// Package engine abstracts the browser-automation engine behind the
// dispatcher. The dispatcher only ever holds opaque Page handles; everything
// that touches a real browser lives behind these interfaces so command
// handling can be tested against fakes.
package engine

import "time"

// Engine is the capability provider for browser pages. One Engine instance
// is created at process startup and lives for the process lifetime.
type Engine interface {
	// NewPage opens a fresh browser tab and returns its handle.
	NewPage() (Page, error)

	// InitialPage returns the page the engine opened at launch. It is bound
	// to the "default" identifier during startup.
	InitialPage() Page

	// Close shuts down the browser and releases engine resources.
	Close() error
}

// Page is an opaque handle to one browser tab. All operations block until
// the engine completes them; timeouts are governed by the engine's default
// action timeout set at launch.
type Page interface {
	// Navigate loads the given URL and waits for the load event.
	Navigate(url string) error

	// Content serializes the current DOM to an HTML string.
	Content() (string, error)

	// Click dispatches a click on the first element matching selector.
	Click(selector string) error

	// TypeInto focuses the element matching selector and types text with the
	// given delay between keystrokes.
	TypeInto(selector, text string, delay time.Duration) error

	// TypeKeys sends text through the keyboard to whatever element currently
	// holds focus.
	TypeKeys(text string, delay time.Duration) error

	// PressEnter presses the Enter key on the focused element.
	PressEnter() error

	// MoveMouse moves the pointer to viewport coordinates (x, y).
	MoveMouse(x, y float64) error

	// ClickAt clicks at viewport coordinates (x, y).
	ClickAt(x, y float64) error

	// Screenshot captures the current viewport as encoded image bytes.
	Screenshot() ([]byte, error)

	// InteractiveElements runs the in-page interactive-element query and
	// returns one entry per matched element in document order. Each element
	// is tagged with its zero-based index as a DOM attribute so later
	// commands can target it.
	InteractiveElements() ([]ElementInfo, error)

	// AccessibilitySnapshot returns the roots of the page's accessibility
	// tree, or an empty slice when the engine has no snapshot to give.
	AccessibilitySnapshot() ([]*AXNode, error)
}

// Options configures the engine at launch.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// Timeout is the default timeout applied to engine actions, in
	// milliseconds. Zero means DefaultTimeout.
	Timeout float64
}

// DefaultTimeout is the default engine action timeout in milliseconds.
const DefaultTimeout = 30000.0
