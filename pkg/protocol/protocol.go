// Package protocol defines the wire format: JSON requests tagged by a
// message discriminant, and the response payloads the dispatcher produces.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Message discriminants accepted on the wire.
const (
	MessageCreatePage             = "create_page"
	MessageNavigate               = "navigate"
	MessageGetHTML                = "get_html"
	MessageClick                  = "click"
	MessageInputText              = "input_text"
	MessageTypeText               = "type_text"
	MessageMoveMouse              = "move_mouse"
	MessageGetScreenshot          = "get_screenshot"
	MessageGetInteractiveElements = "get_interactive_elements"
	MessageObserve                = "observe"
)

// Request is one inbound command. Message selects the variant; the other
// fields are populated per command and ignored otherwise.
type Request struct {
	Message  string  `json:"message"`
	PageID   string  `json:"pageId"`
	URL      string  `json:"url,omitempty"`
	Selector string  `json:"selector,omitempty"`
	Text     string  `json:"text,omitempty"`
	Enter    bool    `json:"enter,omitempty"`
	Click    bool    `json:"click,omitempty"`
	Clean    bool    `json:"clean,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

// Decode parses a raw frame into a Request.
func Decode(raw []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	return &req, nil
}

// ErrorResponse is the error payload shape shared by all commands.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClickResponse acknowledges a successful click.
type ClickResponse struct {
	Success bool `json:"success"`
}

// ScreenshotResponse carries a base64-encoded screenshot.
type ScreenshotResponse struct {
	Screenshot string `json:"screenshot"`
}

// ElementsResponse carries the interactive element list.
type ElementsResponse struct {
	Items interface{} `json:"items"`
}

// SnapshotResponse carries the flattened accessibility snapshot.
type SnapshotResponse struct {
	Snapshot interface{} `json:"snapshot"`
}

// SnapshotNode is one flattened accessibility node.
type SnapshotNode struct {
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// StatusNotification is sent once per connection, before any command, to
// report whether the shared browser instance is available.
type StatusNotification struct {
	Status string `json:"status"`
}

// Status notification values.
const (
	StatusReady              = "ready"
	StatusBrowserUnavailable = "browser_unavailable"
)

// Canonical error payload messages.
const (
	ErrParse            = "Error while parsing JSON"
	ErrPageNotFound     = "Page with requested pageId not found"
	ErrNoMessage        = "No message found"
	ErrPageExists       = "Page already exists"
	ErrNavigate         = "Error while navigating"
	ErrReadContent      = "Error while reading page content"
	ErrClick            = "Error while executing click"
	ErrInputText        = "Error while typing"
	ErrTypeText         = "Could not type"
	ErrMoveMouse        = "Could not move mouse"
	ErrScreenshot       = "Error while taking screenshot"
	ErrCollectElements  = "Error while collecting elements"
	ErrNoSnapshot       = "No snapshot available"
	ErrCreatePageFailed = "Error while creating page"
)
