// Package dom provides tree-visitor helpers over parsed golang.org/x/net/html
// documents: predicates, traversal in document order, structural mutation and
// fragment rendering.
//
// Document order throughout this package means depth-first pre-order, the
// order in which elements appear in the serialized markup. Pairing logic in
// callers depends on this, so traversal is implemented explicitly rather than
// delegated to library iteration helpers.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses a full HTML document.
func Parse(content string) (*html.Node, error) {
	return html.Parse(strings.NewReader(content))
}

// Walk visits n and every descendant in document order.
func Walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, visit)
	}
}

// FindAll returns every node under n (inclusive) matching pred, in document
// order. The result is collected before callers mutate, so extracting or
// replacing returned nodes does not disturb the iteration.
func FindAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	Walk(n, func(c *html.Node) {
		if pred(c) {
			found = append(found, c)
		}
	})
	return found
}

// FindFirst returns the first node under n (inclusive) matching pred in
// document order, or nil.
func FindFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	nodes := FindAll(n, pred)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether the class attribute contains the given token.
func HasClass(n *html.Node, class string) bool {
	val, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(val) {
		if token == class {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of n and its descendants.
func TextContent(n *html.Node) string {
	var b strings.Builder
	Walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// Detach removes n from its parent. No-op when n has no parent.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// ReplaceWith substitutes repl for n at the same tree position.
func ReplaceWith(n, repl *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(repl, n)
	parent.RemoveChild(n)
}

// Wrap inserts wrapper at n's position and moves n inside it.
func Wrap(n, wrapper *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(wrapper, n)
	parent.RemoveChild(n)
	wrapper.AppendChild(n)
}

// NewElement creates a detached element node with the given attributes.
// Attributes are key/value pairs; an odd trailing key gets an empty value.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	for i := 0; i < len(attrs); i += 2 {
		val := ""
		if i+1 < len(attrs) {
			val = attrs[i+1]
		}
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: val})
	}
	return n
}

// NewText creates a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Render serializes n including the node itself.
func Render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return restoreEntities(b.String()), nil
}

// RenderInner serializes the children of n, excluding the node itself.
func RenderInner(n *html.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return restoreEntities(b.String()), nil
}

// restoreEntities re-encodes characters the parser normalized to code
// points. MATLAB exports lean on &nbsp; for code-line spacing and the
// output should keep the entity form rather than raw U+00A0.
func restoreEntities(markup string) string {
	return strings.ReplaceAll(markup, " ", "&nbsp;")
}
