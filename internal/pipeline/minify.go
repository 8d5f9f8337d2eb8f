package pipeline

import (
	"errors"
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

// Media types handled by FragmentMinifier.
const (
	MediaTypeCSS = "text/css"
	MediaTypeJS  = "application/javascript"
)

// ErrMinify indicates a fragment could not be minified.
var ErrMinify = errors.New("fragment minification failed")

// FragmentMinifier shrinks CSS and JavaScript fragments before injection.
type FragmentMinifier struct {
	m *minify.M
}

// NewFragmentMinifier creates a minifier for CSS and JavaScript.
func NewFragmentMinifier() *FragmentMinifier {
	m := minify.New()
	m.AddFunc(MediaTypeCSS, css.Minify)
	m.AddFunc(MediaTypeJS, js.Minify)
	return &FragmentMinifier{m: m}
}

// CSS minifies a stylesheet fragment.
func (f *FragmentMinifier) CSS(src string) (string, error) {
	return f.minify(MediaTypeCSS, src)
}

// JS minifies a script fragment.
func (f *FragmentMinifier) JS(src string) (string, error) {
	return f.minify(MediaTypeJS, src)
}

func (f *FragmentMinifier) minify(mediaType, src string) (string, error) {
	out, err := f.m.String(mediaType, src)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMinify, mediaType, err)
	}
	// Fragments are spliced as "<tag>\n" + body, keep a trailing newline
	// so the closing tag lands on its own line.
	return out + "\n", nil
}
