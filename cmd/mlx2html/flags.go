package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the mlx2html command.
type cliFlags struct {
	inputFile  string
	outputFile string
	configFile string
	mathJaxURL string
	debug      bool
	version    bool
}

// parseFlags parses args (including the program name) and returns the
// flags plus remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	var f cliFlags

	fs := flag.NewFlagSet("mlx2html", flag.ContinueOnError)
	fs.StringVarP(&f.inputFile, "input-file", "i", "", "file to be processed")
	fs.StringVarP(&f.outputFile, "output-file", "o", "", "file that will contain the generated html")
	fs.StringVarP(&f.configFile, "config", "c", "", "config file path")
	fs.StringVar(&f.mathJaxURL, "mathjax-url", "", "MathJax script URL written into the output document")
	fs.BoolVarP(&f.debug, "debug", "d", false, "enable verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return &f, fs.Args(), nil
}
