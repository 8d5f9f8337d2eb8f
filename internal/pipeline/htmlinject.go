package pipeline

import "strings"

// Markers that anchor fragment injection.
const (
	HeadCloseMarker = "</head>"
	BodyCloseMarker = "</body>"
)

// InjectBeforeMarker inserts fragment followed by a newline immediately
// before the first occurrence of marker. The match is case-sensitive.
// If marker is absent, htmlContent is returned unchanged.
func InjectBeforeMarker(htmlContent, marker, fragment string) string {
	idx := strings.Index(htmlContent, marker)
	if idx == -1 {
		return htmlContent
	}
	return htmlContent[:idx] + fragment + "\n" + htmlContent[idx:]
}

// InjectStyle inserts a style block before </head>.
func InjectStyle(htmlContent, styleBlock string) string {
	return InjectBeforeMarker(htmlContent, HeadCloseMarker, styleBlock)
}

// InjectScript inserts a script block before </body>.
func InjectScript(htmlContent, scriptBlock string) string {
	return InjectBeforeMarker(htmlContent, BodyCloseMarker, scriptBlock)
}
