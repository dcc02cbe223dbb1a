package mlx2html

import (
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/alnah/go-mlx2html/internal/dom"
)

// Service orchestrates the export-to-two-pane pipeline.
type Service struct {
	cfg       serviceConfig
	equations equationConverter
	anchors   anchorGenerator
	splitter  sectionSplitter
	renderer  documentRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLogger).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			mathJaxURL: DefaultMathJaxURL,
			logger:     zap.NewNop(),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.equations = &equationConversion{logger: s.cfg.logger}
	s.anchors = &anchorGeneration{logger: s.cfg.logger}
	s.splitter = &sectionSplitting{logger: s.cfg.logger}
	s.renderer = newTemplateRenderer()

	return s
}

// Convert runs the full pipeline over one MATLAB HTML export and returns
// the rendered two-pane document. The document tree exists only for the
// duration of the call. The context is used for cancellation between
// stages.
func (s *Service) Convert(ctx context.Context, input Input) (Result, error) {
	if input.HTML == "" {
		return Result{}, ErrEmptyInput
	}

	doc, err := dom.Parse(input.HTML)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrParseHTML, err)
	}

	// Whole-document passes first.
	s.equations.ConvertEquations(doc)
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	s.anchors.GenerateAnchors(doc)
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	// Then the passes that split it up.
	sections := dom.FindAll(doc, func(n *html.Node) bool {
		return dom.IsElement(n, "div") && dom.HasClass(n, "SectionBlock")
	})
	s.cfg.logger.Debug("located sections", zap.Int("sections", len(sections)))

	panes := make([]SectionPanes, 0, len(sections))
	for _, section := range sections {
		p, err := s.splitter.SplitSection(section)
		if err != nil {
			return Result{}, err
		}
		panes = append(panes, p)
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	data := renderData{
		Title:       documentTitle(doc),
		MatlabStyle: headStyle(doc),
		MathJaxURL:  s.cfg.mathJaxURL,
		Sections:    toRenderSections(panes),
	}

	out, err := s.renderer.RenderDocument(data)
	if err != nil {
		return Result{}, err
	}

	return Result{HTML: out, Sections: len(panes)}, nil
}

// documentTitle returns the text of the title element, or "" when the
// export has none.
func documentTitle(doc *html.Node) string {
	title := dom.FindFirst(doc, func(n *html.Node) bool {
		return dom.IsElement(n, "title")
	})
	if title == nil {
		return ""
	}
	return dom.TextContent(title)
}

// headStyle returns the first style element in the head, as markup. It is
// carried into the output verbatim, not merged with the viewer styles.
func headStyle(doc *html.Node) template.HTML {
	head := dom.FindFirst(doc, func(n *html.Node) bool {
		return dom.IsElement(n, "head")
	})
	if head == nil {
		return ""
	}
	style := dom.FindFirst(head, func(n *html.Node) bool {
		return dom.IsElement(n, "style")
	})
	if style == nil {
		return ""
	}
	markup, err := dom.Render(style)
	if err != nil {
		return ""
	}
	return template.HTML(markup) // #nosec G203 -- markup comes from the parsed tree, not raw user input
}

// toRenderSections converts pane pairs to template values.
func toRenderSections(panes []SectionPanes) []renderSection {
	sections := make([]renderSection, len(panes))
	for i, p := range panes {
		outputs := make([]template.HTML, len(p.Outputs))
		for j, o := range p.Outputs {
			outputs[j] = template.HTML(o) // #nosec G203 -- fragment rendered from the parsed tree
		}
		sections[i] = renderSection{
			Left:    template.HTML(p.Left), // #nosec G203 -- fragment rendered from the parsed tree
			Outputs: outputs,
		}
	}
	return sections
}
