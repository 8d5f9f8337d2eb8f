package htmlopt

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/alnah/go-htmlopt/internal/fileutil"
	"github.com/alnah/go-htmlopt/internal/pipeline"
)

// FileResult holds the outcome of processing a single page.
type FileResult struct {
	Path            string // Candidate path, relative to the root
	BackupPath      string // Backup written or kept (empty on dry run or failure)
	BackupKept      bool   // An earlier backup existed and was left untouched
	ImagesRewritten int    // <img> tags turned into <picture> blocks
	Unrewritten     int    // <img> tags still lacking a loading attribute
	StyleInjected   bool   // </head> was found
	ScriptInjected  bool   // </body> was found
	Err             error  // ErrFileRead or ErrFileWrite
}

// OK reports whether the page was processed successfully.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// ProcessFile reads a page, rewrites its image tags, injects the style and
// script blocks, copies the original to its backup path and overwrites the
// page. Nothing is written if reading fails. An existing backup is kept so it
// always holds the content from before the first run.
// Failures are logged and returned in FileResult.Err, never panicked.
func (o *Optimizer) ProcessFile(page string) FileResult {
	result := FileResult{Path: page}
	target := o.resolve(page)

	data, err := afero.ReadFile(o.fs, target)
	if err != nil {
		return o.fail(result, fmt.Errorf("%w: %s: %w", ErrFileRead, page, err))
	}

	optimized, stats := o.pipeline.Optimize(string(data))
	audit := pipeline.Audit(optimized)

	result.ImagesRewritten = stats.ImagesRewritten
	result.StyleInjected = stats.StyleInjected
	result.ScriptInjected = stats.ScriptInjected
	result.Unrewritten = audit.Unrewritten

	if audit.Unrewritten > 0 {
		o.logger.Warn("unrewritten image tags",
			zap.String("file", page),
			zap.Int("count", audit.Unrewritten),
		)
	}

	if o.cfg.dryRun {
		o.logger.Info("dry run",
			zap.String("file", page),
			zap.Int("images", stats.ImagesRewritten),
		)
		return result
	}

	backup := o.BackupPath(target)
	if fileutil.FileExists(o.fs, backup) {
		result.BackupKept = true
		o.logger.Debug("keeping existing backup", zap.String("backup", o.BackupPath(page)))
	} else if err := fileutil.CopyFile(o.fs, target, backup); err != nil {
		return o.fail(result, fmt.Errorf("%w: %s: %w", ErrFileWrite, o.BackupPath(page), err))
	}

	if err := fileutil.WriteFileAtomic(o.fs, target, []byte(optimized)); err != nil {
		return o.fail(result, fmt.Errorf("%w: %s: %w", ErrFileWrite, page, err))
	}

	result.BackupPath = o.BackupPath(page)
	o.logger.Info("optimized",
		zap.String("file", page),
		zap.Int("images", stats.ImagesRewritten),
		zap.String("backup", result.BackupPath),
	)
	return result
}

// fail records err on result and logs it with the offending path.
func (o *Optimizer) fail(result FileResult, err error) FileResult {
	result.Err = err
	o.logger.Error("processing failed",
		zap.String("file", result.Path),
		zap.Error(err),
	)
	return result
}
