// Package pipeline implements the text stages of asset compression.
//
// This package handles everything between reading source files and handing
// text back to the caller:
//   - Concatenation of source files in caller order
//   - MIME type resolution for embeddable images
//   - Base64 encoding of embeddable resources
//   - Rewriting of url(...) references in compressed CSS, either as data URIs
//     or as a single MHTML document prefixed to the stylesheet
//   - Compilation of JST template files into window.JST registrations
//
// Minification is handled separately by the root jammit package through its
// Minifier interface. This separation keeps the pipeline deterministic and
// free of third-party parsers: the same inputs always yield the same bytes.
package pipeline
