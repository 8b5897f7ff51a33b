// Package minifier shrinks HTML documents through the tdewolff minification library with a
// fixed option set, and implements the file-to-file command built on it.
package minifier

import (
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
)

const mediaTypeHTML = "text/html"

var jsMediaTypes = regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`)

// Minifier transforms HTML documents. A Minifier is safe for concurrent use.
type Minifier struct {
	opts  Options
	m     *minify.M
	files fileAccess
}

// New creates a Minifier for opts.
func New(opts Options) (*Minifier, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := minify.New()
	m.Add(mediaTypeHTML, &minhtml.Minifier{
		KeepComments:        opts.KeepComments,
		KeepDocumentTags:    opts.KeepHTMLAndHeadOpeningTags,
		KeepEndTags:         opts.KeepClosingTags,
		KeepDefaultAttrVals: false,
		KeepWhitespace:      false,
	})
	// Embedded stylesheets and scripts pass through untouched unless a minifier is
	// registered for their media type.
	if opts.MinifyCSS {
		m.AddFunc("text/css", css.Minify)
	}
	if opts.MinifyJS {
		m.AddFuncRegexp(jsMediaTypes, js.Minify)
	}

	return &Minifier{opts: opts, m: m, files: osFiles{}}, nil
}

// Options returns the option set the Minifier was built with.
func (mf *Minifier) Options() Options {
	return mf.opts
}

// Minify returns the minified form of src. The result depends only on src and the options.
func (mf *Minifier) Minify(src []byte) ([]byte, error) {
	pre, err := prepass(src, mf.opts)
	if err != nil {
		return nil, ferrors.TransformError("failed to tokenize HTML").WithCause(err).Build()
	}

	body, err := mf.m.Bytes(mediaTypeHTML, pre.body)
	if err != nil {
		return nil, ferrors.TransformError("failed to minify HTML").WithCause(err).Build()
	}

	if pre.doctype == nil {
		return body, nil
	}
	out := make([]byte, 0, len(pre.doctype)+len(body))
	out = append(out, pre.doctype...)
	return append(out, body...), nil
}
