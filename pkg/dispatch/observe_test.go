package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marionet/marionet/pkg/engine"
	"github.com/marionet/marionet/pkg/pages"
	"github.com/marionet/marionet/pkg/protocol"
)

func TestFlattenSnapshot(t *testing.T) {
	tests := []struct {
		name  string
		roots []*engine.AXNode
		want  []protocol.SnapshotNode
	}{
		{
			name: "only nodes with children survive, pre-order",
			// A(children=[B(), C(children=[D])]) flattens to [A, C]: B and
			// D are leaves, A and C are parents.
			roots: []*engine.AXNode{
				{
					Role: "A",
					Children: []*engine.AXNode{
						{Role: "B"},
						{Role: "C", Children: []*engine.AXNode{{Role: "D"}}},
					},
				},
			},
			want: []protocol.SnapshotNode{{Role: "A"}, {Role: "C"}},
		},
		{
			name:  "all leaves flatten to nothing",
			roots: []*engine.AXNode{{Role: "text"}, {Role: "button", Name: "Go"}},
			want:  []protocol.SnapshotNode{},
		},
		{
			name: "sibling subtrees stay in document order",
			roots: []*engine.AXNode{
				{Role: "banner", Children: []*engine.AXNode{{Role: "heading", Name: "Top"}}},
				{Role: "main", Children: []*engine.AXNode{
					{Role: "list", Children: []*engine.AXNode{{Role: "listitem"}}},
				}},
			},
			want: []protocol.SnapshotNode{
				{Role: "banner"},
				{Role: "main"},
				{Role: "list"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenSnapshot(tt.roots))
		})
	}
}

func TestObserve_EmptySnapshot(t *testing.T) {
	eng := &fakeEngine{initial: &fakePage{}}
	registry := pages.NewRegistry()
	registry.SeedDefault(eng.initial)
	d := New(registry, eng, nil, testLogger(t), time.Millisecond)

	payload := d.Dispatch(&protocol.Request{Message: protocol.MessageObserve, PageID: pages.DefaultID})

	assert.Equal(t, protocol.ErrorResponse{Error: protocol.ErrNoSnapshot}, payload)
}
