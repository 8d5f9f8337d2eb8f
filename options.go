package htmlopt

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option configures an Optimizer.
type Option func(*Optimizer)

// optimizerConfig holds the settings resolved by New.
type optimizerConfig struct {
	root            string
	files           []string
	dir             string
	extension       string
	sourcePrefix    string
	optimizedPrefix string
	webpDir         string
	backupSuffix    string
	styleCSS        string
	scriptJS        string
	minify          bool
	dryRun          bool
}

// Defaults for the portfolio site layout.
const (
	DefaultDir          = "work"
	DefaultExtension    = ".html"
	DefaultBackupSuffix = ".backup"
)

// defaultFiles lists the top-level pages checked in order.
var defaultFiles = []string{
	"index.html",
	"about.html",
	"401.html",
	"404.html",
	"home-copy.html",
	"lab02.html",
	"styleguide.html",
}

// DefaultFiles returns a copy of the top-level pages checked by default.
func DefaultFiles() []string {
	return append([]string(nil), defaultFiles...)
}

// WithFs sets the filesystem used for every read and write.
// Panics if fs is nil (programmer error).
func WithFs(fs afero.Fs) Option {
	if fs == nil {
		panic("htmlopt: WithFs filesystem must not be nil")
	}
	return func(o *Optimizer) {
		o.fs = fs
	}
}

// WithRoot sets the directory candidate paths are relative to.
// Empty means the current working directory.
func WithRoot(root string) Option {
	return func(o *Optimizer) {
		o.cfg.root = root
	}
}

// WithFiles replaces the top-level page list. Order is kept.
func WithFiles(names ...string) Option {
	return func(o *Optimizer) {
		o.cfg.files = append([]string(nil), names...)
	}
}

// WithDir sets the subdirectory scanned for pages. Empty disables the scan.
func WithDir(dir string) Option {
	return func(o *Optimizer) {
		o.cfg.dir = dir
	}
}

// WithExtension sets the filename suffix matched inside the scanned directory.
func WithExtension(ext string) Option {
	return func(o *Optimizer) {
		o.cfg.extension = ext
	}
}

// WithImagePaths sets the conventions used to derive optimized and WebP
// sources. Empty values keep the defaults.
func WithImagePaths(sourcePrefix, optimizedPrefix, webpDir string) Option {
	return func(o *Optimizer) {
		if sourcePrefix != "" {
			o.cfg.sourcePrefix = sourcePrefix
		}
		if optimizedPrefix != "" {
			o.cfg.optimizedPrefix = optimizedPrefix
		}
		if webpDir != "" {
			o.cfg.webpDir = webpDir
		}
	}
}

// WithBackupSuffix sets the suffix appended to a page path for its backup.
func WithBackupSuffix(suffix string) Option {
	return func(o *Optimizer) {
		o.cfg.backupSuffix = suffix
	}
}

// WithFragments replaces the built-in CSS and JavaScript bodies.
// Empty values keep the built-in fragment.
func WithFragments(css, js string) Option {
	return func(o *Optimizer) {
		o.cfg.styleCSS = css
		o.cfg.scriptJS = js
	}
}

// WithMinify minifies the CSS and JavaScript fragments before injection.
func WithMinify(enabled bool) Option {
	return func(o *Optimizer) {
		o.cfg.minify = enabled
	}
}

// WithDryRun transforms pages without writing backups or overwriting them.
func WithDryRun(enabled bool) Option {
	return func(o *Optimizer) {
		o.cfg.dryRun = enabled
	}
}

// WithLogger sets the logger for per-file events. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Optimizer) {
		if l != nil {
			o.logger = l
		}
	}
}
