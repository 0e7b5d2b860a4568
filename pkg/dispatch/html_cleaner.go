package dispatch

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/marionet/marionet/pkg/engine"
)

// cleanHTML re-serializes a DOM snapshot without scripts, styles, and
// other noise, keeping the attributes clients use for targeting (id,
// class, aria annotations, the assigned interactive index). Output is
// capped at maxLength characters of text content.
func cleanHTML(raw string, maxLength int) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var b strings.Builder
	length := 0
	writeCleanNode(doc, &b, &length, maxLength)
	return b.String(), nil
}

func writeCleanNode(n *html.Node, b *strings.Builder, length *int, maxLength int) bool {
	if *length >= maxLength {
		return true
	}

	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		return false

	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return false
		}
		if *length+len(text) > maxLength {
			b.WriteString(text[:maxLength-*length])
			*length = maxLength
			return true
		}
		b.WriteString(text)
		*length += len(text)
		return false

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if droppedElements[tag] {
			return false
		}

		b.WriteByte('<')
		b.WriteString(tag)
		for _, attr := range n.Attr {
			if keepAttribute(tag, strings.ToLower(attr.Key)) {
				fmt.Fprintf(b, ` %s="%s"`, attr.Key, html.EscapeString(attr.Val))
			}
		}
		b.WriteByte('>')

		truncated := writeCleanChildren(n, b, length, maxLength)

		if !voidElements[tag] {
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteByte('>')
		}
		return truncated

	default:
		return writeCleanChildren(n, b, length, maxLength)
	}
}

func writeCleanChildren(n *html.Node, b *strings.Builder, length *int, maxLength int) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if writeCleanNode(c, b, length, maxLength) {
			return true
		}
	}
	return false
}

// droppedElements are removed entirely, subtree included.
var droppedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var globalAttributes = map[string]bool{
	"id":                   true,
	"class":                true,
	"role":                 true,
	"aria-label":           true,
	"aria-description":     true,
	"aria-roledescription": true,
	engine.IndexAttribute:  true,
}

func keepAttribute(tag, attr string) bool {
	if globalAttributes[attr] {
		return true
	}
	if strings.HasPrefix(attr, "data-") {
		return true
	}

	switch tag {
	case "a":
		return attr == "href" || attr == "target"
	case "img":
		return attr == "src" || attr == "alt"
	case "input", "textarea", "select":
		return attr == "name" || attr == "type" || attr == "placeholder" || attr == "value"
	case "button":
		return attr == "type" || attr == "name"
	case "form":
		return attr == "action" || attr == "method"
	}
	return false
}
