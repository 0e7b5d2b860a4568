package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAriaSnapshot(t *testing.T) {
	doc := `
- banner:
  - heading "Welcome" [level=1]
  - link "Home":
    - /url: /home
- main:
  - text: Hello world
  - button "Submit"
- contentinfo
`

	nodes, err := parseAriaSnapshot(doc)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	banner := nodes[0]
	assert.Equal(t, "banner", banner.Role)
	require.Len(t, banner.Children, 2)

	heading := banner.Children[0]
	assert.Equal(t, "heading", heading.Role)
	assert.Equal(t, "Welcome", heading.Name)
	assert.Empty(t, heading.Children)

	link := banner.Children[1]
	assert.Equal(t, "link", link.Role)
	assert.Equal(t, "Home", link.Name)

	main := nodes[1]
	assert.Equal(t, "main", main.Role)
	require.Len(t, main.Children, 2)

	text := main.Children[0]
	assert.Equal(t, "text", text.Role)
	assert.Equal(t, "Hello world", text.Value)

	button := main.Children[1]
	assert.Equal(t, "button", button.Role)
	assert.Equal(t, "Submit", button.Name)

	assert.Equal(t, "contentinfo", nodes[2].Role)
}

func TestParseAriaSnapshot_Empty(t *testing.T) {
	for _, doc := range []string{"", "  \n  "} {
		nodes, err := parseAriaSnapshot(doc)
		require.NoError(t, err)
		assert.Empty(t, nodes)
	}
}

func TestParseAriaSnapshot_Invalid(t *testing.T) {
	_, err := parseAriaSnapshot("just a scalar, not a sequence")
	assert.Error(t, err)
}

func TestParseAriaHeading(t *testing.T) {
	tests := []struct {
		heading string
		role    string
		name    string
	}{
		{`heading "Welcome" [level=1]`, "heading", "Welcome"},
		{`button "Submit"`, "button", "Submit"},
		{`banner`, "banner", ""},
		{`img "logo"`, "img", "logo"},
		{`checkbox [checked]`, "checkbox", ""},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			node := parseAriaHeading(tt.heading)
			assert.Equal(t, tt.role, node.Role)
			assert.Equal(t, tt.name, node.Name)
		})
	}
}
