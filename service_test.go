package mlx2html

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConvertEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := New().Convert(context.Background(), Input{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Convert() error = %v, want ErrEmptyInput", err)
	}
}

func TestConvertCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Convert(ctx, Input{HTML: "<html><body></body></html>"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

func TestConvertMinimalSection(t *testing.T) {
	t.Parallel()

	// One section, no equations, no outputs: one content row, the left
	// pane equals the section markup, the right pane is empty.
	export := `<html><head><title>Minimal</title><style>.mw{width:1px}</style></head><body>
<div class="SectionBlock"><p>hello</p></div>
</body></html>`

	result, err := New().Convert(context.Background(), Input{HTML: export})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if result.Sections != 1 {
		t.Errorf("Sections = %d, want 1", result.Sections)
	}
	for _, want := range []string{
		"<title>Minimal</title>",
		`<style>.mw{width:1px}</style>`,
		`<div class="pane"><p>hello</p></div>`,
	} {
		if !strings.Contains(result.HTML, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if rows := strings.Count(result.HTML, `class="content_row clearfix"`); rows != 1 {
		t.Errorf("got %d content rows, want 1", rows)
	}
}

func TestConvertFullPipeline(t *testing.T) {
	t.Parallel()

	export := `<html><head><title>Demo</title><style>.m{}</style></head><body>
<div class="SectionBlock">
<h1>Heading</h1>
<div class="LineNodeBlock">
<div class="inlineWrapper"></div>
<div class="inlineWrapper outputs"><code>disp(x)</code></div>
</div>
<p><img src="eq.png"></p>
<div class="outputParagraph"><pre>ans = 3</pre></div>
</div>
<!--
##### SOURCE BEGIN #####
%% Demo
% $x+y$
disp(x)
##### SOURCE END #####
-->
</body></html>`

	result, err := New().Convert(context.Background(), Input{HTML: export})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	for _, want := range []string{
		// Equation substituted for the placeholder image.
		`<span class="math">x+y</span>`,
		// Heading wrapped in a generated anchor.
		`<a id="anchor1" href="#" class="local-anchor"><h1>Heading</h1></a>`,
		// Output extracted to the right pane.
		`<pre>ans = 3</pre>`,
		// Cosmetic outputs class stripped from the code line.
		`<div class="inlineWrapper"><code>disp(x)</code></div>`,
	} {
		if !strings.Contains(result.HTML, want) {
			t.Errorf("output missing %q in:\n%s", want, result.HTML)
		}
	}

	if strings.Contains(result.HTML, `<img src="eq.png"`) {
		t.Error("placeholder image survived")
	}
	if strings.Contains(result.HTML, "outputParagraph") {
		t.Error("output block left in the left pane")
	}
}

func TestConvertNoTitleRendersEmpty(t *testing.T) {
	t.Parallel()

	result, err := New().Convert(context.Background(), Input{HTML: `<html><body><div class="SectionBlock"><p>x</p></div></body></html>`})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(result.HTML, "<title></title>") {
		t.Error("missing empty title element for title-less export")
	}
}

func TestWithMathJaxURL(t *testing.T) {
	t.Parallel()

	svc := New(WithMathJaxURL("https://example.com/mj.js"))
	result, err := svc.Convert(context.Background(), Input{HTML: "<html><body></body></html>"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(result.HTML, `src="https://example.com/mj.js"`) {
		t.Error("custom MathJax URL not written into the output")
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func()
	}{
		{"empty MathJax URL", func() { WithMathJaxURL("") }},
		{"nil logger", func() { WithLogger(nil) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.call()
		})
	}
}
