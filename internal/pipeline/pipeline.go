package pipeline

// Pipeline applies the three text substitutions of an optimization pass:
// image tag rewriting, style injection and script injection.
type Pipeline struct {
	Rewriter    *ImageRewriter
	StyleBlock  string
	ScriptBlock string
}

// Stats describes what a single Optimize call changed.
type Stats struct {
	ImagesRewritten int
	StyleInjected   bool
	ScriptInjected  bool
}

// Optimize returns the transformed document. The input is treated as an
// opaque string; no intermediate structure is kept.
func (p *Pipeline) Optimize(htmlContent string) (string, Stats) {
	var stats Stats

	out, n := p.Rewriter.Rewrite(htmlContent)
	stats.ImagesRewritten = n

	withStyle := InjectStyle(out, p.StyleBlock)
	stats.StyleInjected = len(withStyle) != len(out)

	withScript := InjectScript(withStyle, p.ScriptBlock)
	stats.ScriptInjected = len(withScript) != len(withStyle)

	return withScript, stats
}
