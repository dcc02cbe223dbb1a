package mlx2html

import "go.uber.org/zap"

// DefaultMathJaxURL is the script reference written into the output
// document. It is a dependency of the generated page, not of this tool.
const DefaultMathJaxURL = "https://cdn.mathjax.org/mathjax/latest/MathJax.js?config=TeX-AMS-MML_HTMLorMML"

// Input contains conversion parameters.
type Input struct {
	HTML string // MATLAB HTML export content (required)
}

// Result holds the rendered two-pane document.
type Result struct {
	HTML     string // self-contained output document
	Sections int    // number of SectionBlock rows rendered
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	mathJaxURL string
	logger     *zap.Logger
}

// WithMathJaxURL overrides the MathJax script URL embedded in the output.
// Panics if url is empty (programmer error).
func WithMathJaxURL(url string) Option {
	if url == "" {
		panic("mlx2html: WithMathJaxURL url must not be empty")
	}
	return func(s *Service) {
		s.cfg.mathJaxURL = url
	}
}

// WithLogger sets the logger used for heuristic warnings and progress.
// The default is zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("mlx2html: WithLogger logger must not be nil")
	}
	return func(s *Service) {
		s.cfg.logger = logger
	}
}
