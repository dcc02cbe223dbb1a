package mlx2html

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/alnah/go-mlx2html/internal/dom"
)

// SectionPanes holds one rendered content row: the section's remaining
// markup on the left and its extracted output fragments on the right, in
// document order.
type SectionPanes struct {
	Left    string
	Outputs []string
}

// sectionSplitter partitions one SectionBlock into pane markup.
type sectionSplitter interface {
	SplitSection(section *html.Node) (SectionPanes, error)
}

type sectionSplitting struct {
	logger *zap.Logger
}

// SplitSection extracts every outputParagraph block from the section (which
// simultaneously removes it from the left pane and collects it for the
// right), strips a cosmetic class combination left behind by the MATLAB
// renderer, trims empty lines from the edges of each code block, and
// serializes both panes.
func (s *sectionSplitting) SplitSection(section *html.Node) (SectionPanes, error) {
	outputs := dom.FindAll(section, func(n *html.Node) bool {
		return dom.IsElement(n, "div") && dom.HasClass(n, "outputParagraph")
	})
	s.logger.Debug("found output blocks in section", zap.Int("outputs", len(outputs)))
	for _, output := range outputs {
		dom.Detach(output)
	}

	// The last code line before a figure sometimes carries an extra
	// "outputs" class. It has no meaning once the outputs live in their
	// own pane.
	for _, line := range dom.FindAll(section, func(n *html.Node) bool {
		return dom.HasClass(n, "inlineWrapper") && dom.HasClass(n, "outputs")
	}) {
		dom.SetAttr(line, "class", "inlineWrapper")
	}

	for _, block := range dom.FindAll(section, func(n *html.Node) bool {
		return dom.HasClass(n, "LineNodeBlock")
	}) {
		trimEmptyCodeLines(block)
	}

	left, err := dom.RenderInner(section)
	if err != nil {
		return SectionPanes{}, fmt.Errorf("%w: rendering section: %v", ErrRenderDocument, err)
	}

	panes := SectionPanes{Left: left}
	for _, output := range outputs {
		fragment, err := dom.RenderInner(output)
		if err != nil {
			return SectionPanes{}, fmt.Errorf("%w: rendering output: %v", ErrRenderDocument, err)
		}
		panes.Outputs = append(panes.Outputs, fragment)
	}
	return panes, nil
}

// trimEmptyCodeLines removes inlineWrapper lines with empty text content
// from the start of the block until the first non-empty line, then from the
// end until the last non-empty line. Interior empty lines stay.
func trimEmptyCodeLines(block *html.Node) {
	lines := dom.FindAll(block, func(n *html.Node) bool {
		return dom.IsElement(n, "div") && dom.HasClass(n, "inlineWrapper")
	})

	for _, line := range lines {
		if dom.TextContent(line) != "" {
			break
		}
		dom.Detach(line)
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if dom.TextContent(lines[i]) != "" {
			break
		}
		dom.Detach(lines[i])
	}
}
