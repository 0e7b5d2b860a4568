package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementsFromEvaluate(t *testing.T) {
	result := []interface{}{
		map[string]interface{}{
			"visible":   true,
			"className": "btn primary",
			"ariaLabel": "Search",
			"text":      "Go",
			"id":        "go",
			"index":     "0",
			"tagName":   "button",
			"type":      "submit",
			"value":     "",
		},
		map[string]interface{}{
			"visible": false,
			"href":    "/about",
			"index":   "1",
			"tagName": "a",
		},
	}

	elements, err := elementsFromEvaluate(result)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	assert.Equal(t, ElementInfo{
		Visible:   true,
		ClassName: "btn primary",
		AriaLabel: "Search",
		Text:      "Go",
		ID:        "go",
		Index:     "0",
		TagName:   "button",
		Type:      "submit",
	}, elements[0])

	assert.False(t, elements[1].Visible)
	assert.Equal(t, "/about", elements[1].Href)
	assert.Equal(t, "1", elements[1].Index)
	assert.Equal(t, "a", elements[1].TagName)
}

func TestElementsFromEvaluate_Nil(t *testing.T) {
	elements, err := elementsFromEvaluate(nil)
	require.NoError(t, err)
	assert.Empty(t, elements)
}

func TestElementsFromEvaluate_BadShape(t *testing.T) {
	_, err := elementsFromEvaluate("not a list")
	assert.Error(t, err)

	_, err = elementsFromEvaluate([]interface{}{"not a map"})
	assert.Error(t, err)
}
