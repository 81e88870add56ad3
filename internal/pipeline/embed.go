package pipeline

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/alnah/go-jammit/internal/logging"
)

// DefaultEmbedMarker is the path segment that opts a url(...) reference into
// embedding. Only assets placed under an embed/ directory are inlined.
const DefaultEmbedMarker = "embed/"

// MHTML envelope. The boundary is fixed; encoded bodies are single-line
// base64 and never contain a separator line.
const (
	MHTMLBoundary = "JAMMIT_MHTML_SEPARATOR"

	mhtmlStart     = "/*\r\nContent-Type: multipart/related; boundary=\"" + MHTMLBoundary + "\"\r\n\r\n"
	mhtmlSeparator = "--" + MHTMLBoundary + "\r\n"
	mhtmlEnd       = "*/\r\n"
)

// EmbedOptions configures an Embedder.
type EmbedOptions struct {
	Marker          string       // defaults to DefaultEmbedMarker
	StrictMimeTypes bool         // fail on extensions outside the MIME table
	Logger          *slog.Logger // nil discards
}

// Embedder rewrites url(...) references in compressed CSS so that the
// referenced images travel inside the stylesheet.
// An Embedder holds no per-call state and is safe for concurrent use.
type Embedder struct {
	loader     ResourceLoader
	detector   *regexp.Regexp
	strictMime bool
	logger     *slog.Logger
}

// NewEmbedder creates an Embedder reading resources through loader.
// Returns ErrInvalidEmbedMarker if opts.Marker is unusable.
func NewEmbedder(loader ResourceLoader, opts EmbedOptions) (*Embedder, error) {
	detector, err := URLDetector(opts.Marker)
	if err != nil {
		return nil, err
	}
	return &Embedder{
		loader:     loader,
		detector:   detector,
		strictMime: opts.StrictMimeTypes,
		logger:     logging.Default(opts.Logger).With("component", "embedder"),
	}, nil
}

// URLDetector builds the pattern matching url(...) references eligible for
// embedding: an absolute path, optionally quoted, containing marker followed
// by at least one character. Submatch 1 is the identifier.
// An empty marker selects DefaultEmbedMarker.
func URLDetector(marker string) (*regexp.Regexp, error) {
	if marker == "" {
		marker = DefaultEmbedMarker
	}
	if err := ValidateEmbedMarker(marker); err != nil {
		return nil, err
	}
	return regexp.Compile(`url\(['"]?(/[^\s)'"]*` + regexp.QuoteMeta(marker) + `[^\s)'"]+)['"]?\)`)
}

// ValidateEmbedMarker rejects markers that could never match inside an
// unquoted url(...) argument.
func ValidateEmbedMarker(marker string) error {
	if marker == "" {
		return fmt.Errorf("%w: empty marker", ErrInvalidEmbedMarker)
	}
	if strings.ContainsAny(marker, " \t\r\n\f)'\"") {
		return fmt.Errorf("%w: %q", ErrInvalidEmbedMarker, marker)
	}
	return nil
}

// DataURIs replaces every eligible reference with
// url("data:<mime>;base64,<contents>"). Each occurrence is rewritten on its
// own; CSS without eligible references is returned unchanged.
func (e *Embedder) DataURIs(css string) (string, error) {
	return e.rewrite(css, func(identifier string) (string, error) {
		mime, err := e.mimeType(identifier)
		if err != nil {
			return "", err
		}
		encoded, err := EncodeResource(e.loader, identifier)
		if err != nil {
			return "", err
		}
		return `url("data:` + mime + `;base64,` + encoded + `")`, nil
	})
}

// MHTML rewrites every eligible reference to url("mhtml:REQUEST_URL!<id>")
// and prefixes the stylesheet with a multipart/related document holding one
// part per distinct identifier, in first-seen order. The envelope is emitted
// even when nothing matched.
func (e *Embedder) MHTML(css string) (string, error) {
	var identifiers []string
	seen := make(map[string]struct{})

	rewritten, err := e.rewrite(css, func(identifier string) (string, error) {
		if _, ok := seen[identifier]; !ok {
			seen[identifier] = struct{}{}
			identifiers = append(identifiers, identifier)
		}
		return `url("mhtml:REQUEST_URL!` + identifier + `")`, nil
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(mhtmlStart)
	for _, identifier := range identifiers {
		mime, err := e.mimeType(identifier)
		if err != nil {
			return "", err
		}
		encoded, err := EncodeResource(e.loader, identifier)
		if err != nil {
			return "", err
		}
		b.WriteString(mhtmlSeparator)
		b.WriteString("Content-Location: " + identifier + "\r\n")
		b.WriteString("Content-Type: " + mime + "\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")
		b.WriteString(encoded)
		b.WriteString("\r\n")
	}
	b.WriteString(mhtmlEnd)
	b.WriteString(rewritten)

	e.logger.Debug("built mhtml envelope", "parts", len(identifiers))
	return b.String(), nil
}

// Identifiers returns the identifiers of every eligible reference in css,
// duplicates included, in order of appearance.
func (e *Embedder) Identifiers(css string) []string {
	matches := e.detector.FindAllStringSubmatch(css, -1)
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m[1]
	}
	return ids
}

// rewrite replaces each eligible url(...) with replace(identifier), leaving
// the text between matches untouched.
func (e *Embedder) rewrite(css string, replace func(identifier string) (string, error)) (string, error) {
	matches := e.detector.FindAllStringSubmatchIndex(css, -1)
	if len(matches) == 0 {
		return css, nil
	}

	var b strings.Builder
	b.Grow(len(css))
	last := 0
	for _, m := range matches {
		repl, err := replace(css[m[2]:m[3]])
		if err != nil {
			return "", err
		}
		b.WriteString(css[last:m[0]])
		b.WriteString(repl)
		last = m[1]
	}
	b.WriteString(css[last:])
	return b.String(), nil
}

// mimeType resolves the MIME type of identifier. Unknown extensions yield an
// empty type and a warning, or ErrUnresolvedMimeType in strict mode.
func (e *Embedder) mimeType(identifier string) (string, error) {
	mime, ok := MimeType(identifier)
	if ok {
		return mime, nil
	}
	if e.strictMime {
		return "", fmt.Errorf("%w: %s (supported: %s)", ErrUnresolvedMimeType, identifier, strings.Join(SupportedExtensions(), ", "))
	}
	e.logger.Warn("embedding resource with unknown MIME type", "identifier", identifier)
	return "", nil
}
