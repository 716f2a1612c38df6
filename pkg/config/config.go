// Package config defines core configuration types for mdconv.
// These types are pure data structures with no dependency on config loaders.
package config

// Config is the root configuration structure for mdconv.
type Config struct {
	// OutDir is the directory converted files are written under, mirroring
	// the input tree. Empty means each output sits next to its source.
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`

	// Extensions is the set of file extensions (with leading dot) treated
	// as Markdown during discovery.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// Exclude contains glob patterns for files and directories to skip.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// Collect reports every parse error in a document instead of stopping
	// at the first one, writing best-effort output for the blocks that
	// converted cleanly.
	Collect bool `mapstructure:"collect" yaml:"collect"`

	// MaxDepth bounds HTML element nesting. 0 means the engine default.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`

	// FollowSymlinks controls whether directory symlinks are traversed
	// during discovery.
	FollowSymlinks bool `mapstructure:"follow_symlinks" yaml:"follow_symlinks"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers. 0 means auto.
	Jobs int `mapstructure:"-" yaml:"-"`

	// CheckOnly validates without writing output.
	CheckOnly bool `mapstructure:"-" yaml:"-"`

	// Stdout writes rendered HTML to standard output instead of files.
	Stdout bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: []string{".md", ".markdown"},
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.Extensions != nil {
		clone.Extensions = make([]string, len(c.Extensions))
		copy(clone.Extensions, c.Extensions)
	}
	if c.Exclude != nil {
		clone.Exclude = make([]string, len(c.Exclude))
		copy(clone.Exclude, c.Exclude)
	}
	return &clone
}
