package mlx2html

import (
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/alnah/go-mlx2html/internal/assets"
)

// renderData feeds the embedded two-column page template. Pane fields are
// raw markup produced upstream by the pipeline itself; no further escaping
// or sanitization happens here.
type renderData struct {
	Title       string
	MatlabStyle template.HTML // the export's own <style> element, verbatim
	ViewerStyle template.CSS  // embedded viewer stylesheet
	MathJaxURL  string
	Sections    []renderSection
}

// renderSection is one content row of the output document.
type renderSection struct {
	Left    template.HTML
	Outputs []template.HTML
}

// documentRenderer assembles the final document from extracted parts.
type documentRenderer interface {
	RenderDocument(data renderData) (string, error)
}

// templateRenderer renders through the embedded page template. The template
// and viewer stylesheet are loaded once on first use.
type templateRenderer struct {
	once  sync.Once
	tmpl  *template.Template
	style template.CSS
	err   error
}

func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{}
}

func (r *templateRenderer) load() {
	text, err := assets.LoadTemplate("document")
	if err != nil {
		r.err = err
		return
	}
	style, err := assets.LoadStyle("viewer")
	if err != nil {
		r.err = err
		return
	}
	tmpl, err := template.New("document").Parse(text)
	if err != nil {
		r.err = err
		return
	}
	r.tmpl = tmpl
	r.style = template.CSS(style)
}

// RenderDocument executes the page template with the given data. The
// export's stylesheet is written before the viewer stylesheet, so viewer
// rules win on selector conflicts.
func (r *templateRenderer) RenderDocument(data renderData) (string, error) {
	r.once.Do(r.load)
	if r.err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderDocument, r.err)
	}

	data.ViewerStyle = r.style

	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderDocument, err)
	}
	return b.String(), nil
}
