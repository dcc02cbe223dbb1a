package mlx2html

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/alnah/go-mlx2html/internal/dom"
)

// anchorGenerator wraps headings in self-referencing anchor links.
type anchorGenerator interface {
	GenerateAnchors(doc *html.Node)
}

type anchorGeneration struct {
	logger *zap.Logger
}

// GenerateAnchors wraps every h1 and h2 element in an anchor link carrying
// a generated id (anchor1, anchor2, ... in document order). Existing ids in
// the document are not consulted, and running this twice nests the
// wrapping; both are accepted behaviors of the source renderer's
// conventions, not guarded against.
func (g *anchorGeneration) GenerateAnchors(doc *html.Node) {
	headings := dom.FindAll(doc, func(n *html.Node) bool {
		return dom.IsElement(n, "h1") || dom.IsElement(n, "h2")
	})

	for i, heading := range headings {
		g.logger.Debug("making anchor link for heading",
			zap.String("heading", dom.TextContent(heading)))
		anchor := dom.NewElement("a",
			"id", fmt.Sprintf("anchor%d", i+1),
			"href", "#",
			"class", "local-anchor")
		dom.Wrap(heading, anchor)
	}
}
