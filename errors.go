package mlx2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput     = errors.New("input HTML cannot be empty")
	ErrParseHTML      = errors.New("failed to parse input HTML")
	ErrRenderDocument = errors.New("document rendering failed")
)
