package mlx2html

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/alnah/go-mlx2html/internal/dom"
)

// sourceSentinel marks the HTML comment in which MATLAB embeds a copy of
// the original live-script source.
const sourceSentinel = "##### SOURCE BEGIN #####"

// equationPattern matches a run of $ delimiters, any content (non-greedy,
// across line breaks), and a closing run of $ delimiters. The capture group
// is the equation body without the delimiters.
//
// Not a robust pattern against pathological sources; it relies on MATLAB
// escaping stray $ characters in its own export.
var equationPattern = regexp.MustCompile(`(?s)\$+(.+?)\$+`)

// commentedNewline matches the % sigil MATLAB re-inserts at the start of
// each continuation line of a multi-line commented equation.
var commentedNewline = regexp.MustCompile(`\n%`)

// equationConverter replaces rendered equation placeholder images with
// inline math markup.
type equationConverter interface {
	ConvertEquations(doc *html.Node)
}

// equationConversion recovers LaTeX equations from the embedded source
// comment and substitutes them for MATLAB's placeholder images.
type equationConversion struct {
	logger *zap.Logger
}

// ConvertEquations mutates doc in place. Substitution is all-or-nothing:
// equations pair with placeholder images positionally (i-th equation, i-th
// non-figure image in document order), so when the counts disagree the
// pairing cannot be trusted and every image is left untouched.
func (e *equationConversion) ConvertEquations(doc *html.Node) {
	source, ok := findEmbeddedSource(doc)
	if !ok {
		e.logger.Warn("unable to locate the original MATLAB source in the file; equations will not be substituted")
		return
	}

	equations := extractEquations(source)
	placeholders := findPlaceholderImages(doc)

	if len(equations) != len(placeholders) {
		e.logger.Warn("equation count in the embedded source does not match the placeholder image count; skipping substitution",
			zap.Int("equations", len(equations)),
			zap.Int("images", len(placeholders)))
		for _, eq := range equations {
			e.logger.Debug("equation identified in input file", zap.String("equation", eq))
		}
		return
	}

	e.logger.Debug("isolated equations in the embedded source",
		zap.Int("equations", len(equations)),
		zap.Int("images", len(placeholders)))

	for i, eq := range equations {
		span := dom.NewElement("span", "class", "math")
		span.AppendChild(dom.NewText(cleanEquation(eq)))
		dom.ReplaceWith(placeholders[i], span)
	}
}

// findEmbeddedSource returns the text of the comment node carrying the
// original live-script source. When several sentinel comments exist the
// last one wins.
func findEmbeddedSource(doc *html.Node) (string, bool) {
	var source string
	var found bool
	dom.Walk(doc, func(n *html.Node) {
		if n.Type != html.CommentNode {
			return
		}
		text := strings.TrimSpace(n.Data)
		if strings.HasPrefix(text, sourceSentinel) {
			source = text
			found = true
		}
	})
	return source, found
}

// extractEquations pulls LaTeX equations out of the embedded source text.
// Equations only ever appear on MATLAB comment lines, so all other lines
// are discarded before matching; this keeps $ characters in code (string
// literals, sprintf formats) from producing false pairs.
func extractEquations(source string) []string {
	var commentLines []string
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "%") {
			commentLines = append(commentLines, line)
		}
	}

	var equations []string
	for _, m := range equationPattern.FindAllStringSubmatch(strings.Join(commentLines, "\n"), -1) {
		equations = append(equations, m[1])
	}
	return equations
}

// findPlaceholderImages returns every img element without a class
// attribute, in document order. MATLAB gives figure images a
// distinguishing class and rendered-equation images none at all, which is
// the only structural difference between the two.
func findPlaceholderImages(doc *html.Node) []*html.Node {
	return dom.FindAll(doc, func(n *html.Node) bool {
		if !dom.IsElement(n, "img") {
			return false
		}
		_, hasClass := dom.Attr(n, "class")
		return !hasClass
	})
}

// cleanEquation flattens a possibly multi-line equation to one line: the %
// sigil re-commenting each continuation line becomes a space, then all
// newlines are dropped.
func cleanEquation(eq string) string {
	eq = commentedNewline.ReplaceAllString(eq, "\n ")
	return strings.ReplaceAll(eq, "\n", "")
}
