package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/mdconv/pkg/fsutil"
	"github.com/yaklabco/mdconv/pkg/mdsrc"
	"github.com/yaklabco/mdconv/pkg/render"
)

// Runner converts Markdown files discovered under Options.Paths.
type Runner struct {
	conv *render.Converter
}

// New creates a Runner whose engine is configured by opts.Render.
func New(opts render.Options) *Runner {
	return &Runner{conv: render.New(opts)}
}

// Run discovers files under opts.Paths and converts them concurrently.
// Outcomes are returned in path order regardless of worker scheduling.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	files, err := Discover(ctx, workDir, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, workDir, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; reassemble by discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	workDir string,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.convertFile(ctx, path, workDir, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// convertFile reads, converts, and (outside check mode) writes one file.
func (r *Runner) convertFile(ctx context.Context, path, workDir string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	html, parseErrs := r.conv.ConvertSource(mdsrc.New(path, content))
	outcome.ParseErrors = parseErrs

	if opts.CheckOnly {
		return outcome
	}
	if len(parseErrs) > 0 && !opts.Render.CollectErrors {
		return outcome
	}

	outPath, err := outputPath(path, workDir, opts.OutDir)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.OutPath = outPath
	outcome.Bytes = len(html)

	if err := fsutil.EnsureDir(filepath.Dir(outPath)); err != nil {
		outcome.Err = err
		return outcome
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, outPath, []byte(html), 0)
	if err != nil {
		outcome.Err = fmt.Errorf("write %s: %w", outPath, err)
		return outcome
	}
	outcome.Written = written

	return outcome
}

// outputPath maps a source path to its output path. With an out dir the
// input tree relative to workDir is mirrored under it; otherwise the output
// sits next to the source.
func outputPath(path, workDir, outDir string) (string, error) {
	if outDir == "" {
		return fsutil.ReplaceExt(path, ".html"), nil
	}

	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Sources outside the working tree land flat in the out dir.
		rel = filepath.Base(path)
	}

	abs, err := filepath.Abs(outDir)
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}

	return filepath.Join(abs, fsutil.ReplaceExt(rel, ".html")), nil
}
