package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestAudit - Counting images the pattern did not reach
// ---------------------------------------------------------------------------

func TestAudit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want AuditResult
	}{
		{
			name: "no images",
			html: "<html><body><p>x</p></body></html>",
			want: AuditResult{},
		},
		{
			name: "all lazy",
			html: `<img src="a.jpg" loading="lazy"><img loading="lazy" src="b.jpg"/>`,
			want: AuditResult{Images: 2, Unrewritten: 0},
		},
		{
			name: "unquoted src left behind",
			html: `<img src=a.jpg><img src="b.jpg" loading="lazy">`,
			want: AuditResult{Images: 2, Unrewritten: 1},
		},
		{
			name: "uppercase attribute normalized",
			html: `<IMG SRC="a.jpg" LOADING="lazy">`,
			want: AuditResult{Images: 1, Unrewritten: 0},
		},
		{
			name: "images inside script text ignored",
			html: `<script>var s = '<img src=x>';</script><img src="y" loading="lazy">`,
			want: AuditResult{Images: 1, Unrewritten: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Audit(tt.html); got != tt.want {
				t.Errorf("Audit() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAudit_AfterRewrite(t *testing.T) {
	t.Parallel()

	out, _ := NewImageRewriter().Rewrite(`<img src="images/a.jpg"><img src=images/b.jpg>`)

	got := Audit(out)
	if got.Images != 2 || got.Unrewritten != 1 {
		t.Errorf("Audit() = %+v, want 2 images with 1 unrewritten", got)
	}
}
