package pipeline

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestInjectBeforeMarker - Marker-anchored insertion
// ---------------------------------------------------------------------------

func TestInjectBeforeMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		marker   string
		fragment string
		want     string
	}{
		{
			name:     "inserts before head close",
			html:     "<html><head><title>T</title></head><body></body></html>",
			marker:   HeadCloseMarker,
			fragment: "<style>x</style>",
			want:     "<html><head><title>T</title><style>x</style>\n</head><body></body></html>",
		},
		{
			name:     "inserts before body close",
			html:     "<body><p>a</p></body>",
			marker:   BodyCloseMarker,
			fragment: "<script>y</script>",
			want:     "<body><p>a</p><script>y</script>\n</body>",
		},
		{
			name:     "missing marker is a no-op",
			html:     "<p>fragment only</p>",
			marker:   HeadCloseMarker,
			fragment: "<style>x</style>",
			want:     "<p>fragment only</p>",
		},
		{
			name:     "only first marker used",
			html:     "</body>text</body>",
			marker:   BodyCloseMarker,
			fragment: "F",
			want:     "F\n</body>text</body>",
		},
		{
			name:     "marker match is case sensitive",
			html:     "<HEAD></HEAD>",
			marker:   HeadCloseMarker,
			fragment: "F",
			want:     "<HEAD></HEAD>",
		},
		{
			name:     "empty document",
			html:     "",
			marker:   BodyCloseMarker,
			fragment: "F",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := InjectBeforeMarker(tt.html, tt.marker, tt.fragment)
			if got != tt.want {
				t.Errorf("InjectBeforeMarker() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInjectStyleAndScript(t *testing.T) {
	t.Parallel()

	doc := "<html><head></head><body><p>x</p></body></html>"
	style := "\n<style>\nimg{}\n</style>"
	script := "\n<script>\nrun()\n</script>"

	got := InjectScript(InjectStyle(doc, style), script)

	if strings.Count(got, style) != 1 {
		t.Errorf("style block should appear exactly once, got %d", strings.Count(got, style))
	}
	if !strings.Contains(got, style+"\n</head>") {
		t.Error("style block should sit immediately before </head>")
	}
	if strings.Count(got, script) != 1 {
		t.Errorf("script block should appear exactly once, got %d", strings.Count(got, script))
	}
	if !strings.Contains(got, script+"\n</body>") {
		t.Error("script block should sit immediately before </body>")
	}
}
