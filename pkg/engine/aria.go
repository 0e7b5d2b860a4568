package engine

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseAriaSnapshot turns the YAML document Playwright produces for an aria
// snapshot into an AXNode tree. The document is a sequence where each item
// is either a scalar ("button \"Submit\"", a leaf) or a single-key mapping
// whose key names the node and whose value holds its children or text.
// Keys beginning with "/" are node properties (e.g. /url) and are skipped.
func parseAriaSnapshot(doc string) ([]*AXNode, error) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil, nil
	}

	var raw []interface{}
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("invalid snapshot document: %w", err)
	}

	return ariaNodes(raw)
}

func ariaNodes(items []interface{}) ([]*AXNode, error) {
	nodes := make([]*AXNode, 0, len(items))
	for _, item := range items {
		node, err := ariaNode(item)
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

func ariaNode(item interface{}) (*AXNode, error) {
	switch v := item.(type) {
	case string:
		node := parseAriaHeading(v)
		return node, nil

	case map[string]interface{}:
		for key, value := range v {
			if strings.HasPrefix(key, "/") {
				continue
			}

			node := parseAriaHeading(key)

			switch child := value.(type) {
			case nil:
				// Node with no children recorded.
			case string:
				node.Value = child
			case []interface{}:
				children, err := ariaNodes(child)
				if err != nil {
					return nil, err
				}
				node.Children = children
			default:
				return nil, fmt.Errorf("unexpected snapshot value type %T under %q", value, key)
			}
			return node, nil
		}
		// Mapping held only properties.
		return nil, nil

	default:
		return nil, fmt.Errorf("unexpected snapshot entry type %T", item)
	}
}

// parseAriaHeading splits a node heading like `heading "Welcome" [level=1]`
// into role and accessible name. Bracketed attributes are dropped.
func parseAriaHeading(heading string) *AXNode {
	heading = strings.TrimSpace(heading)

	role := heading
	name := ""

	if i := strings.IndexByte(heading, '"'); i >= 0 {
		role = strings.TrimSpace(heading[:i])
		rest := heading[i+1:]
		if j := strings.IndexByte(rest, '"'); j >= 0 {
			name = rest[:j]
		} else {
			name = rest
		}
	} else if i := strings.IndexByte(heading, '['); i >= 0 {
		role = strings.TrimSpace(heading[:i])
	}

	if i := strings.IndexByte(role, ' '); i >= 0 {
		role = role[:i]
	}
	role = strings.TrimSuffix(role, ":")

	return &AXNode{Role: role, Name: name}
}
