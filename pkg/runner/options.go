// Package runner provides multi-file conversion orchestration: discovery,
// a worker pool, and deterministic result aggregation.
package runner

import "github.com/yaklabco/mdconv/pkg/render"

// Options controls a conversion run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths and
	// to mirror the input tree under OutDir. If empty, the current process
	// working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown. Defaults to [".md", ".markdown"].
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// OutDir is the directory output files are written under, mirroring the
	// input tree relative to WorkingDir. If empty, each output is written
	// next to its source with the extension swapped for .html.
	OutDir string

	// CheckOnly parses and validates without writing any output.
	CheckOnly bool

	// Render configures the conversion engine.
	Render render.Options
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
