package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		fragment    string
		wantErr     error
		wantContain []string
	}{
		{
			name:     "loads lazyload style",
			fragment: "lazyload",
			wantContain: []string{
				"transition: opacity 0.3s ease;",
				`img[loading="lazy"] {`,
				`img[loading="lazy"].loaded {`,
				`.no-lazy-loading img[loading="lazy"] {`,
				"@media (max-width: 768px)",
				"max-width: 100%;",
			},
		},
		{
			name:     "returns ErrFragmentNotFound for nonexistent",
			fragment: "nonexistent-fragment-xyz",
			wantErr:  ErrFragmentNotFound,
		},
		{
			name:     "rejects path traversal",
			fragment: "../secret",
			wantErr:  ErrInvalidFragmentName,
		},
		{
			name:     "rejects backslash",
			fragment: `fragments\lazyload`,
			wantErr:  ErrInvalidFragmentName,
		},
		{
			name:     "rejects extension",
			fragment: "lazyload.css",
			wantErr:  ErrInvalidFragmentName,
		},
		{
			name:     "rejects empty name",
			fragment: "",
			wantErr:  ErrInvalidFragmentName,
		},
		{
			name:     "rejects null byte",
			fragment: "lazy\x00load",
			wantErr:  ErrInvalidFragmentName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.fragment)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.fragment, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.fragment, err)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("LoadStyle(%q) content should contain %q", tt.fragment, want)
				}
			}
		})
	}
}

func TestEmbeddedLoader_LoadScript(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadScript(DefaultFragmentName)
	if err != nil {
		t.Fatalf("LoadScript(%q) unexpected error: %v", DefaultFragmentName, err)
	}

	for _, want := range []string{
		"'loading' in HTMLImageElement.prototype",
		"img.classList.add('loaded');",
		"document.body.classList.add('no-lazy-loading');",
		"img.dataset.src = img.src;",
		`width="1" height="1"`,
		"new IntersectionObserver(",
		"observer.unobserve(img);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("LoadScript content should contain %q", want)
		}
	}

	if _, err := loader.LoadScript("missing"); !errors.Is(err, ErrFragmentNotFound) {
		t.Errorf("LoadScript(missing) error = %v, want %v", err, ErrFragmentNotFound)
	}
}

// ---------------------------------------------------------------------------
// TestDefaultBlocks - Wrapped default fragments
// ---------------------------------------------------------------------------

func TestDefaultStyleBlock(t *testing.T) {
	t.Parallel()

	css, err := NewEmbeddedLoader().LoadStyle(DefaultFragmentName)
	if err != nil {
		t.Fatalf("LoadStyle() error: %v", err)
	}

	got := WrapStyle(css)
	if !strings.HasPrefix(got, "\n<style>\n/* Image optimization styles */") {
		t.Errorf("style block prefix = %q", got[:min(len(got), 40)])
	}
	if !strings.HasSuffix(got, "}\n</style>") {
		t.Errorf("style block should end with closing style tag, got suffix %q", got[max(0, len(got)-20):])
	}
}

func TestDefaultScriptBlock(t *testing.T) {
	t.Parallel()

	js, err := NewEmbeddedLoader().LoadScript(DefaultFragmentName)
	if err != nil {
		t.Fatalf("LoadScript() error: %v", err)
	}

	got := WrapScript(js)
	if !strings.HasPrefix(got, "\n<script>\n// Lazy loading polyfill") {
		t.Errorf("script block prefix = %q", got[:min(len(got), 40)])
	}
	if !strings.HasSuffix(got, "}\n</script>") {
		t.Errorf("script block should end with closing script tag")
	}
	if strings.Count(got, "<script>") != 1 {
		t.Error("script block should contain exactly one script element")
	}

	// Injected verbatim, including comments and indented blank lines.
	for _, want := range []string{
		"no-lazy-loading');\n    \n    // Intersection Observer polyfill for lazy loading\n    const imageObserver",
		"    });\n    \n    const images",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("script block missing %q", want)
		}
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	if got := WrapStyle("a{}"); got != "\n<style>\na{}</style>" {
		t.Errorf("WrapStyle() = %q", got)
	}
	if got := WrapScript("x()"); got != "\n<script>\nx()</script>" {
		t.Errorf("WrapScript() = %q", got)
	}
}

func TestEmbeddedLoader_ImplementsFragmentLoader(t *testing.T) {
	t.Parallel()

	var _ FragmentLoader = (*EmbeddedLoader)(nil)
}
