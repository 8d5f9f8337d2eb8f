package pipeline

import (
	"regexp"
	"strings"
)

// Default path conventions for optimized image variants.
const (
	DefaultSourcePrefix    = "images/"
	DefaultOptimizedPrefix = "optimized_images/"
	DefaultWebPDir         = "optimized_images/webp/"
)

// imgTagPattern matches an <img> opening tag with a quoted src attribute.
// Groups: text before src, src value, text after the closing quote.
// Attribute order matters and unquoted values are not matched.
var imgTagPattern = regexp.MustCompile(`(?i)<img([^>]*?)src=["']([^"']*?)["']([^>]*?)>`)

var (
	dirPrefixPattern = regexp.MustCompile(`^.*[\\/]`)
	extensionPattern = regexp.MustCompile(`\.[^/.]+$`)
)

// ImageRewriter turns <img> tags into <picture> blocks with a WebP source
// and native lazy loading.
type ImageRewriter struct {
	SourcePrefix    string // Substring replaced in src (first occurrence only)
	OptimizedPrefix string // Replacement for SourcePrefix
	WebPDir         string // Directory prefix for the WebP candidate
}

// NewImageRewriter creates an ImageRewriter with the default path conventions.
func NewImageRewriter() *ImageRewriter {
	return &ImageRewriter{
		SourcePrefix:    DefaultSourcePrefix,
		OptimizedPrefix: DefaultOptimizedPrefix,
		WebPDir:         DefaultWebPDir,
	}
}

// Rewrite replaces every matching <img> tag in htmlContent and returns the
// result along with the number of tags rewritten. Tags whose text already
// contains "loading=" are left untouched, so a second pass is a no-op.
func (r *ImageRewriter) Rewrite(htmlContent string) (string, int) {
	matches := imgTagPattern.FindAllStringSubmatchIndex(htmlContent, -1)
	if len(matches) == 0 {
		return htmlContent, 0
	}

	var b strings.Builder
	b.Grow(len(htmlContent) + len(matches)*128)

	rewritten := 0
	last := 0
	for _, m := range matches {
		b.WriteString(htmlContent[last:m[0]])
		last = m[1]

		tag := htmlContent[m[0]:m[1]]
		if strings.Contains(tag, "loading=") {
			b.WriteString(tag)
			continue
		}

		beforeSrc := htmlContent[m[2]:m[3]]
		src := htmlContent[m[4]:m[5]]
		afterSrc := htmlContent[m[6]:m[7]]

		b.WriteString(r.pictureBlock(beforeSrc, src, afterSrc))
		rewritten++
	}
	b.WriteString(htmlContent[last:])

	return b.String(), rewritten
}

// pictureBlock builds the replacement for a single matched tag.
func (r *ImageRewriter) pictureBlock(beforeSrc, src, afterSrc string) string {
	return "<picture>\n" +
		`  <source srcset="` + r.WebPPath(src) + `" type="image/webp">` + "\n" +
		"  <img" + beforeSrc + `src="` + r.OptimizedPath(src) + `"` + afterSrc + ` loading="lazy">` + "\n" +
		"</picture>"
}

// WebPPath returns the WebP candidate for src: the base filename with its
// extension swapped for .webp, placed under WebPDir.
func (r *ImageRewriter) WebPPath(src string) string {
	base := dirPrefixPattern.ReplaceAllLiteralString(src, "")
	name := extensionPattern.ReplaceAllLiteralString(base, "")
	return r.WebPDir + name + ".webp"
}

// OptimizedPath returns src with the first SourcePrefix occurrence replaced
// by OptimizedPrefix.
func (r *ImageRewriter) OptimizedPath(src string) string {
	if r.SourcePrefix == "" {
		return src
	}
	return strings.Replace(src, r.SourcePrefix, r.OptimizedPrefix, 1)
}
