package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mlx2html "github.com/alnah/go-mlx2html"
	"github.com/alnah/go-mlx2html/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input file given (use -i or a positional argument)")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// run resolves paths and config, converts one file and writes the result.
func run(flags *cliFlags, args []string, logger *zap.Logger, level zap.AtomicLevel) error {
	inputPath := flags.inputFile
	if inputPath == "" && len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return ErrNoInput
	}

	cfg, err := config.Resolve(flags.configFile, filepath.Dir(inputPath), ".")
	if err != nil {
		return err
	}
	if cfg.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	mathJaxURL := flags.mathJaxURL
	if mathJaxURL == "" {
		mathJaxURL = cfg.MathJax.URL
	}

	outputPath := flags.outputFile
	if outputPath == "" {
		outputPath = deriveOutputPath(inputPath, cfg.Output.Suffix, cfg.Output.Dir)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- path is the user's own input argument
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	opts := []mlx2html.Option{mlx2html.WithLogger(logger)}
	if mathJaxURL != "" {
		opts = append(opts, mlx2html.WithMathJaxURL(mathJaxURL))
	}
	svc := mlx2html.New(opts...)

	result, err := svc.Convert(context.Background(), mlx2html.Input{HTML: string(content)})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(result.HTML), 0o644); err != nil { // #nosec G306 -- generated document, not a secret
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	logger.Info("saved generated file",
		zap.String("path", outputPath),
		zap.Int("sections", result.Sections))
	return nil
}

// deriveOutputPath builds the default output path: given /foo/bar/test.html
// and suffix "_mlx" the result is /foo/bar/test_mlx.html. A non-empty dir
// replaces the input's directory.
func deriveOutputPath(inputPath, suffix, dir string) string {
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, name+suffix+ext)
}
