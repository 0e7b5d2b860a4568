package dispatch

import (
	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/protocol"
)

// observe snapshots the accessibility tree and flattens it.
func (d *Dispatcher) observe(page engine.Page) interface{} {
	roots, err := page.AccessibilitySnapshot()
	if err != nil {
		d.log.Errorf("observe: %v", err)
		return protocol.ErrorResponse{Error: protocol.ErrNoSnapshot}
	}
	if len(roots) == 0 {
		return protocol.ErrorResponse{Error: protocol.ErrNoSnapshot}
	}

	return protocol.SnapshotResponse{Snapshot: flattenSnapshot(roots)}
}

// flattenSnapshot walks the tree in pre-order and keeps a node only when
// it has at least one child. Leaves are visible solely through their
// parents.
func flattenSnapshot(roots []*engine.AXNode) []protocol.SnapshotNode {
	flat := make([]protocol.SnapshotNode, 0, len(roots))
	var walk func(node *engine.AXNode)
	walk = func(node *engine.AXNode) {
		if len(node.Children) > 0 {
			flat = append(flat, protocol.SnapshotNode{
				Role:  node.Role,
				Name:  node.Name,
				Value: node.Value,
			})
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return flat
}
