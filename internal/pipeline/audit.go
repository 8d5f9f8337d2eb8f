package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AuditResult summarizes the <img> elements found in a document.
type AuditResult struct {
	Images      int // All <img> start tags
	Unrewritten int // <img> tags without a loading attribute
}

// Audit tokenizes htmlContent and counts <img> elements that still lack a
// loading attribute after rewriting. These are tags the pattern could not
// match, such as an unquoted src. The document is never modified.
func Audit(htmlContent string) AuditResult {
	var result AuditResult

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer failure: report what was counted.
			return result
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Img {
				continue
			}
			result.Images++
			if !hasAttr(tok, "loading") {
				result.Unrewritten++
			}
		}
	}
}

// hasAttr reports whether tok carries the named attribute.
func hasAttr(tok html.Token, key string) bool {
	for _, a := range tok.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
