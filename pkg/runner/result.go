package runner

import "github.com/yaklabco/mdconv/pkg/render"

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the source file that was processed.
	Path string

	// OutPath is the output file this source maps to. Empty in check mode.
	OutPath string

	// ParseErrors holds the document's parse errors, if any. When the run
	// collects errors, a file may have both parse errors and partial output.
	ParseErrors []*render.ParseError

	// Err is set if the file could not be read or its output written.
	Err error

	// Written reports whether the output file was created or updated.
	// False when the output already held identical content.
	Written bool

	// Bytes is the size of the rendered HTML.
	Bytes int
}

// Failed reports whether this file should count against the exit status.
func (o FileOutcome) Failed() bool {
	return o.Err != nil || len(o.ParseErrors) > 0
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesConverted is the number of files that parsed cleanly.
	FilesConverted int

	// FilesFailed is the number of files with parse errors or I/O errors.
	FilesFailed int

	// FilesWritten is the number of output files created or updated.
	FilesWritten int

	// FilesUnchanged is the number of outputs skipped because the rendered
	// HTML matched what was already on disk.
	FilesUnchanged int

	// ParseErrors is the total number of parse errors across all files.
	ParseErrors int

	// BytesWritten is the total size of all written outputs.
	BytesWritten int64
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	r.Stats.ParseErrors += len(outcome.ParseErrors)

	if outcome.Failed() {
		r.Stats.FilesFailed++
	} else {
		r.Stats.FilesConverted++
	}

	if outcome.Err != nil || outcome.OutPath == "" {
		return
	}
	if outcome.Written {
		r.Stats.FilesWritten++
		r.Stats.BytesWritten += int64(outcome.Bytes)
	} else {
		r.Stats.FilesUnchanged++
	}
}
