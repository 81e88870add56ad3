// Package jammit concatenates and compresses JavaScript and CSS, inlines
// images into compressed stylesheets, and compiles JST templates into a
// single script.
//
// # Quick Start
//
// Create a compressor and call one of its operations:
//
//	c, err := jammit.NewCompressor()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	js, err := c.CompressJS("public/js/app.js", "public/js/util.js")
//	css, err := c.CompressCSS([]string{"public/css/site.css"}, jammit.VariantDataURI, "")
//	jst, err := c.CompileJST("app/views/row.jst", "app/views/list.jst")
//
// Sources are read in the order given and joined with a newline before
// minification. Any unreadable file fails the whole call; there is no
// partial output.
//
// # Embedding Images
//
// Only url(...) references whose absolute path contains the embed marker
// (embed/ by default) are rewritten. The referenced file is read from the
// public root (public/ by default):
//
//	url(/images/embed/logo.png)  ->  public/images/embed/logo.png
//
// VariantDataURI replaces each reference with a data: URL. VariantMHTML
// collects every distinct resource into a multipart/related document placed
// in a comment at the top of the stylesheet, and points each reference at it
// with an mhtml: URL. Replace REQUEST_URL with the stylesheet's absolute URL
// when serving the MHTML variant.
//
// # Templates
//
// CompileJST emits one window.JST.<name> assignment per .jst file. With the
// default template function the bundled micro-template compiler is prepended;
// pass WithTemplateFunction("_.template") to use your own and provide
// window.JST yourself.
//
// # Configuration
//
// Use functional options to customize the compressor:
//
//	c, err := jammit.NewCompressor(
//	    jammit.WithPublicRoot("web/static"),
//	    jammit.WithEmbedMarker("inline/"),
//	    jammit.WithStrictMimeTypes(true),
//	    jammit.WithLogger(slog.Default()),
//	)
//
// A Compressor keeps no state between calls and is safe for concurrent use.
package jammit
