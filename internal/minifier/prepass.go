package minifier

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/net/html"
)

// prepassResult is the source after the token pre-pass.
type prepassResult struct {
	doctype []byte // verbatim doctype, nil if absent or not preserved
	body    []byte
}

// prepass walks the token stream and drops the constructs the backend has no switch for:
// bang declarations (<!ELEMENT ...>, <![CDATA[...]]> outside foreign content) and
// processing instructions (<?xml ...?>). A doctype is lifted out verbatim when the doctype
// must not be minified and nothing that survives minification precedes it; a doctype
// after content stays where it is. Everything else is copied byte for byte.
func prepass(src []byte, opts Options) (prepassResult, error) {
	var res prepassResult
	var body bytes.Buffer
	body.Grow(len(src))

	// leading holds while only whitespace and tokens the output drops have been seen.
	leading := true
	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		tt := z.Next()
		raw := z.Raw()

		switch tt {
		case html.ErrorToken:
			body.Write(raw)
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return prepassResult{}, err
			}
			res.body = body.Bytes()
			return res, nil
		case html.DoctypeToken:
			if opts.DoNotMinifyDoctype && leading {
				res.doctype = bytes.Clone(raw)
				leading = false
				continue
			}
			leading = false
		case html.CommentToken:
			if drop(raw, opts) {
				continue
			}
			if opts.KeepComments {
				leading = false
			}
		case html.TextToken:
			if len(bytes.TrimSpace(raw)) > 0 {
				leading = false
			}
		default:
			leading = false
		}
		body.Write(raw)
	}
}

// drop reports whether a comment-like token should be removed. The tokenizer reports
// bogus comments for both <!...> and <?...?>.
func drop(raw []byte, opts Options) bool {
	switch {
	case bytes.HasPrefix(raw, []byte("<!--")):
		return false
	case bytes.HasPrefix(raw, []byte("<?")):
		return opts.RemoveProcessingInstructions
	case bytes.HasPrefix(raw, []byte("<!")):
		return opts.RemoveBangs
	default:
		return false
	}
}
