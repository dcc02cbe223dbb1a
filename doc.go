// Package mlx2html converts MATLAB live-script HTML exports into two-pane
// HTML documents: code, text and equations on the left, computed outputs
// (text, figures) on the right.
//
// # Quick Start
//
// Create a service and convert an export:
//
//	svc := mlx2html.New()
//	result, err := svc.Convert(ctx, mlx2html.Input{HTML: exportHTML})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(result.HTML), 0644)
//
// # Conversion Pipeline
//
// The export is parsed once into a document tree, mutated in stages, and
// re-serialized through a fixed two-column template:
//
//  1. Equation substitution: LaTeX equations recovered from the embedded
//     MATLAB source comment replace MATLAB's rendered placeholder images.
//  2. Anchor generation: h1/h2 headings get wrapped in anchor links.
//  3. Section splitting: each SectionBlock is partitioned into a left pane
//     (code, text, equations) and right-pane output fragments.
//  4. Rendering: the pane pairs, document title and the export's own
//     stylesheet are fed into the embedded page template.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := mlx2html.New(
//	    mlx2html.WithLogger(logger),
//	    mlx2html.WithMathJaxURL("https://example.com/MathJax.js"),
//	)
//
// # Heuristics
//
// MATLAB's export carries no schema; nodes are identified by class-name
// conventions (SectionBlock, outputParagraph, inlineWrapper, LineNodeBlock)
// and equation placeholders by the absence of a class attribute on img
// elements. Equation substitution is all-or-nothing: when the number of
// equations found in the embedded source differs from the number of
// placeholder images, no substitution happens and the images pass through
// unchanged, because the positional pairing cannot be trusted.
package mlx2html
