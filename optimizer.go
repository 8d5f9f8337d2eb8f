package htmlopt

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/alnah/go-htmlopt/internal/assets"
	"github.com/alnah/go-htmlopt/internal/fileutil"
	"github.com/alnah/go-htmlopt/internal/pipeline"
)

// Optimizer discovers the pages of a site and rewrites them in place.
// Create with New. An Optimizer is not safe for concurrent use.
type Optimizer struct {
	cfg      optimizerConfig
	fs       afero.Fs
	logger   *zap.Logger
	pipeline *pipeline.Pipeline
}

// New creates an Optimizer for the default portfolio layout on the OS
// filesystem. Use options to customize it (e.g., WithRoot, WithFiles, WithDryRun).
// Returns ErrInvalidOption if a suffix is unusable, or an error if the
// fragments cannot be loaded or minified.
func New(opts ...Option) (*Optimizer, error) {
	o := &Optimizer{
		cfg: optimizerConfig{
			files:           DefaultFiles(),
			dir:             DefaultDir,
			extension:       DefaultExtension,
			sourcePrefix:    pipeline.DefaultSourcePrefix,
			optimizedPrefix: pipeline.DefaultOptimizedPrefix,
			webpDir:         pipeline.DefaultWebPDir,
			backupSuffix:    DefaultBackupSuffix,
		},
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if err := o.cfg.validate(); err != nil {
		return nil, err
	}

	styleBlock, scriptBlock, err := o.cfg.fragmentBlocks()
	if err != nil {
		return nil, err
	}

	o.pipeline = &pipeline.Pipeline{
		Rewriter: &pipeline.ImageRewriter{
			SourcePrefix:    o.cfg.sourcePrefix,
			OptimizedPrefix: o.cfg.optimizedPrefix,
			WebPDir:         o.cfg.webpDir,
		},
		StyleBlock:  styleBlock,
		ScriptBlock: scriptBlock,
	}

	return o, nil
}

// validate checks the settings that end up in file paths.
func (c *optimizerConfig) validate() error {
	if err := fileutil.ValidateExtension(c.backupSuffix); err != nil {
		return fmt.Errorf("%w: backup suffix %q: %v", ErrInvalidOption, c.backupSuffix, err)
	}
	if !strings.HasPrefix(c.extension, ".") {
		return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidOption, c.extension)
	}
	for _, name := range c.files {
		if name == "" {
			return fmt.Errorf("%w: empty file name", ErrInvalidOption)
		}
	}
	return nil
}

// fragmentBlocks resolves the CSS and script bodies and wraps them in their
// elements. Custom bodies replace the embedded ones.
func (c *optimizerConfig) fragmentBlocks() (string, string, error) {
	var loader assets.FragmentLoader = assets.NewEmbeddedLoader()

	css := c.styleCSS
	if css == "" {
		var err error
		if css, err = loader.LoadStyle(assets.DefaultFragmentName); err != nil {
			return "", "", fmt.Errorf("loading style fragment: %w", err)
		}
	}

	js := c.scriptJS
	if js == "" {
		var err error
		if js, err = loader.LoadScript(assets.DefaultFragmentName); err != nil {
			return "", "", fmt.Errorf("loading script fragment: %w", err)
		}
	}

	if c.minify {
		m := pipeline.NewFragmentMinifier()
		var err error
		if css, err = m.CSS(css); err != nil {
			return "", "", err
		}
		if js, err = m.JS(js); err != nil {
			return "", "", err
		}
	}

	return assets.WrapStyle(css), assets.WrapScript(js), nil
}

// Root returns the directory candidate paths are relative to.
func (o *Optimizer) Root() string {
	return o.cfg.root
}

// BackupPath returns where the backup of a candidate page is written.
func (o *Optimizer) BackupPath(page string) string {
	return page + o.cfg.backupSuffix
}

// Discover returns the candidate pages relative to the root: the top-level
// names that exist as regular files, in configured order, followed by the
// files of the scanned directory whose name ends with the extension, sorted
// by name. A missing directory contributes nothing.
// Returns ErrDiscovery if an existing directory cannot be listed.
func (o *Optimizer) Discover() ([]string, error) {
	var pages []string

	for _, name := range o.cfg.files {
		if fileutil.FileExists(o.fs, o.resolve(name)) {
			pages = append(pages, name)
		} else {
			o.logger.Debug("skipping missing page", zap.String("file", name))
		}
	}

	if o.cfg.dir == "" || !fileutil.DirExists(o.fs, o.resolve(o.cfg.dir)) {
		return pages, nil
	}

	// afero.ReadDir sorts entries by name.
	entries, err := afero.ReadDir(o.fs, o.resolve(o.cfg.dir))
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", ErrDiscovery, o.cfg.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), o.cfg.extension) {
			continue
		}
		pages = append(pages, path.Join(o.cfg.dir, entry.Name()))
	}

	return pages, nil
}

// resolve maps a candidate path onto the filesystem.
func (o *Optimizer) resolve(page string) string {
	if o.cfg.root == "" {
		return filepath.FromSlash(page)
	}
	return filepath.Join(o.cfg.root, filepath.FromSlash(page))
}
