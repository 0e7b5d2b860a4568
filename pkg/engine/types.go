package engine

// ElementInfo describes one interactive element found on a page. Fields
// mirror what the in-page query extracts; absent attributes are empty
// strings.
type ElementInfo struct {
	// Visible reports whether the element has a rendered box and is not
	// hidden via CSS.
	Visible bool `json:"visible"`

	// ClassName is the element's class attribute.
	ClassName string `json:"className"`

	// AriaLabel, AriaDescription, and AriaRoleDescription carry the
	// element's assistive-technology annotations.
	AriaLabel           string `json:"ariaLabel"`
	AriaDescription     string `json:"ariaDescription"`
	AriaRoleDescription string `json:"ariaRoleDescription"`

	// Href is the link target for anchors.
	Href string `json:"href"`

	// Text is the element's inner text.
	Text string `json:"text"`

	// ID is the element's id attribute.
	ID string `json:"id"`

	// Index is the zero-based position assigned during the query, stamped
	// onto the element as an attribute and reported here as a string.
	Index string `json:"index"`

	// TagName is the lowercase tag name.
	TagName string `json:"tagName"`

	// Type is the input type for input elements.
	Type string `json:"type"`

	// Value is the current value for form controls.
	Value string `json:"value"`
}

// AXNode is one node of the accessibility tree the engine reports.
type AXNode struct {
	// Role is the node's computed ARIA role.
	Role string `json:"role"`

	// Name is the node's accessible name, if any.
	Name string `json:"name,omitempty"`

	// Value is the node's value for text-bearing leaves.
	Value string `json:"value,omitempty"`

	// Children holds the node's children in document order.
	Children []*AXNode `json:"children,omitempty"`
}
