package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// command names a compression command.
type command string

const (
	cmdJS  command = "js"
	cmdCSS command = "css"
	cmdJST command = "jst"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	output  string
	quiet   bool
	verbose bool
}

// cssFlags holds stylesheet and embedding flags.
type cssFlags struct {
	embed         string
	stylesheetURL string
	publicRoot    string
	embedMarker   string
	strictMime    bool
}

// jstFlags holds template compilation flags.
type jstFlags struct {
	templateFunction string
	assetPath        string
}

// compressFlags holds all flags for a compression command.
type compressFlags struct {
	common commonFlags
	css    cssFlags
	jst    jstFlags

	// changed reports whether a flag was set explicitly.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addCSSFlags adds stylesheet flags to a FlagSet.
func addCSSFlags(fs *flag.FlagSet, f *cssFlags) {
	fs.StringVarP(&f.embed, "embed", "e", "", "embed images: none, datauri, mhtml")
	fs.StringVar(&f.stylesheetURL, "stylesheet-url", "", "public URL of the stylesheet (reserved)")
	fs.StringVar(&f.publicRoot, "public-root", "", "directory embedded urls resolve under (default: public)")
	fs.StringVar(&f.embedMarker, "embed-marker", "", "path segment marking embeddable images (default: embed/)")
	fs.BoolVar(&f.strictMime, "strict-mime", false, "fail on images with unknown extensions")
}

// addJSTFlags adds template flags to a FlagSet.
func addJSTFlags(fs *flag.FlagSet, f *jstFlags) {
	fs.StringVarP(&f.templateFunction, "template-function", "t", "", "function compiling each template (default: template)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory whose scripts/jst.js replaces the bundled compiler")
}

// parseCompressFlags parses flags for cmd and returns positional args.
// Returns flag.ErrHelp unwrapped when -h is given; other parse failures wrap ErrUsage.
func parseCompressFlags(cmd command, args []string, stderr io.Writer) (*compressFlags, []string, error) {
	f := &compressFlags{}
	fs := newCompressFlagSet(cmd, f)
	fs.SetOutput(stderr)
	f.changed = fs.Changed

	fs.Usage = func() { printCommandUsage(stderr, cmd) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

// newCompressFlagSet registers the flag groups cmd accepts into f.
// Shared by parsing and completion so both see the same flags.
func newCompressFlagSet(cmd command, f *compressFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(string(cmd), flag.ContinueOnError)

	addCommonFlags(fs, &f.common)
	switch cmd {
	case cmdCSS:
		addCSSFlags(fs, &f.css)
	case cmdJST:
		addJSTFlags(fs, &f.jst)
	}

	return fs
}
