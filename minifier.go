package jammit

import (
	"fmt"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

// Media types registered with the minifier.
const (
	mediaTypeCSS = "text/css"
	mediaTypeJS  = "application/javascript"
)

// Minifier compresses JavaScript and CSS text.
// Implementations must be deterministic and safe for concurrent use.
type Minifier interface {
	MinifyJS(src string) (string, error)
	MinifyCSS(src string) (string, error)
}

// StandardMinifier minifies with github.com/tdewolff/minify.
type StandardMinifier struct {
	m *minify.M
}

// NewMinifier creates a StandardMinifier with CSS and JavaScript registered.
func NewMinifier() *StandardMinifier {
	m := minify.New()
	m.AddFunc(mediaTypeCSS, css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	return &StandardMinifier{m: m}
}

// MinifyJS returns src minified as JavaScript.
func (s *StandardMinifier) MinifyJS(src string) (string, error) {
	out, err := s.m.String(mediaTypeJS, src)
	if err != nil {
		return "", fmt.Errorf("%w: javascript: %v", ErrMinification, err)
	}
	return out, nil
}

// MinifyCSS returns src minified as CSS.
func (s *StandardMinifier) MinifyCSS(src string) (string, error) {
	out, err := s.m.String(mediaTypeCSS, src)
	if err != nil {
		return "", fmt.Errorf("%w: css: %v", ErrMinification, err)
	}
	return out, nil
}

// Compile-time interface check.
var _ Minifier = (*StandardMinifier)(nil)
