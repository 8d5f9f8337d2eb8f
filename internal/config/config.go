package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	htmlopt "github.com/alnah/go-htmlopt"
	"github.com/alnah/go-htmlopt/internal/fileutil"
	"github.com/alnah/go-htmlopt/internal/pipeline"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Defaults for the portfolio site layout, shared with the library.
const (
	DefaultDir             = htmlopt.DefaultDir
	DefaultExtension       = htmlopt.DefaultExtension
	DefaultSourcePrefix    = pipeline.DefaultSourcePrefix
	DefaultOptimizedPrefix = pipeline.DefaultOptimizedPrefix
	DefaultWebPDir         = pipeline.DefaultWebPDir
	DefaultBackupSuffix    = htmlopt.DefaultBackupSuffix
	DefaultLogLevel        = "info"
)

// Config holds all configuration for an optimization run.
type Config struct {
	Discovery DiscoveryConfig `yaml:"discovery"`
	Images    ImagesConfig    `yaml:"images"`
	Backup    BackupConfig    `yaml:"backup"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

// DiscoveryConfig defines which files are candidates for optimization.
type DiscoveryConfig struct {
	Root      string   `yaml:"root"`                                       // Base directory (empty = working directory)
	Files     []string `yaml:"files" validate:"dive,required"`             // Top-level names, kept in order
	Dir       string   `yaml:"dir"`                                        // Subdirectory scanned for pages
	Extension string   `yaml:"extension" validate:"required,startswith=."` // Suffix matched in Dir
}

// ImagesConfig defines the path conventions for optimized variants.
type ImagesConfig struct {
	SourcePrefix    string `yaml:"sourcePrefix" validate:"required"`
	OptimizedPrefix string `yaml:"optimizedPrefix" validate:"required"`
	WebPDir         string `yaml:"webpDir" validate:"required,endswith=/"`
}

// BackupConfig defines the backup copy written before each overwrite.
type BackupConfig struct {
	Suffix string `yaml:"suffix" validate:"required"`
}

// OutputConfig defines how fragments and files are written.
type OutputConfig struct {
	Minify bool `yaml:"minify"` // Minify injected CSS and JS
	DryRun bool `yaml:"dryRun"` // Transform without writing
}

// LogConfig defines logging options.
type LogConfig struct {
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File       string `yaml:"file"`                        // Optional rotating log file
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gte=0"`  // Rotation size (0 = lumberjack default)
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"` // Rotated files kept (0 = all)
}

// validate is shared; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml names so errors match what users wrote.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct constraints, the backup suffix, and that top-level
// names carry the discovery extension.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			field := strings.TrimPrefix(fe.Namespace(), "Config.")
			if fe.Param() != "" {
				return fmt.Errorf("%w: %s: must satisfy %s=%s, got %v", ErrInvalidConfig, field, fe.Tag(), fe.Param(), fe.Value())
			}
			return fmt.Errorf("%w: %s: must satisfy %s", ErrInvalidConfig, field, fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := fileutil.ValidateExtension(c.Backup.Suffix); err != nil {
		return fmt.Errorf("%w: backup.suffix: %v", ErrInvalidConfig, err)
	}

	for i, name := range c.Discovery.Files {
		if !strings.HasSuffix(name, c.Discovery.Extension) {
			return fmt.Errorf("%w: discovery.files[%d]: %q must end with %s", ErrInvalidConfig, i, name, c.Discovery.Extension)
		}
	}

	return nil
}

// DefaultConfig returns the built-in configuration for the portfolio layout.
func DefaultConfig() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			Files:     htmlopt.DefaultFiles(),
			Dir:       DefaultDir,
			Extension: DefaultExtension,
		},
		Images: ImagesConfig{
			SourcePrefix:    DefaultSourcePrefix,
			OptimizedPrefix: DefaultOptimizedPrefix,
			WebPDir:         DefaultWebPDir,
		},
		Backup: BackupConfig{Suffix: DefaultBackupSuffix},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their default values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fileCfg Config
	if err := decodeStrict(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := DefaultConfig()
	cfg.Merge(&fileCfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge copies every non-zero field of other onto c.
func (c *Config) Merge(other *Config) {
	if other.Discovery.Root != "" {
		c.Discovery.Root = other.Discovery.Root
	}
	if other.Discovery.Files != nil {
		c.Discovery.Files = append([]string(nil), other.Discovery.Files...)
	}
	if other.Discovery.Dir != "" {
		c.Discovery.Dir = other.Discovery.Dir
	}
	if other.Discovery.Extension != "" {
		c.Discovery.Extension = other.Discovery.Extension
	}

	if other.Images.SourcePrefix != "" {
		c.Images.SourcePrefix = other.Images.SourcePrefix
	}
	if other.Images.OptimizedPrefix != "" {
		c.Images.OptimizedPrefix = other.Images.OptimizedPrefix
	}
	if other.Images.WebPDir != "" {
		c.Images.WebPDir = other.Images.WebPDir
	}

	if other.Backup.Suffix != "" {
		c.Backup.Suffix = other.Backup.Suffix
	}

	if other.Output.Minify {
		c.Output.Minify = true
	}
	if other.Output.DryRun {
		c.Output.DryRun = true
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
	if other.Log.MaxSizeMB != 0 {
		c.Log.MaxSizeMB = other.Log.MaxSizeMB
	}
	if other.Log.MaxBackups != 0 {
		c.Log.MaxBackups = other.Log.MaxBackups
	}
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/htmlopt/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "htmlopt", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Searched: triedPaths}
}

// NotFoundError reports a config name that matched no file.
// It unwraps to ErrConfigNotFound.
type NotFoundError struct {
	Searched []string // Paths tried, in search order
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
