package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdconv/internal/configloader"
	"github.com/yaklabco/mdconv/internal/logging"
	"github.com/yaklabco/mdconv/internal/ui/pretty"
	"github.com/yaklabco/mdconv/pkg/config"
	"github.com/yaklabco/mdconv/pkg/fsutil"
	"github.com/yaklabco/mdconv/pkg/mdsrc"
	"github.com/yaklabco/mdconv/pkg/render"
	"github.com/yaklabco/mdconv/pkg/runner"
)

// ErrConversionFailed is returned when one or more files fail to convert.
// It carries no message of its own; diagnostics are printed before it is
// returned.
var ErrConversionFailed = errors.New("conversion failed")

type convertFlags struct {
	outDir         string
	stdout         bool
	check          bool
	collect        bool
	jobs           int
	maxDepth       int
	extensions     []string
	exclude        []string
	followSymlinks bool
	noContext      bool
	summary        bool
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert Markdown files to HTML",
		Long:  convertLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "",
		"directory to write outputs under, mirroring the input tree")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false,
		"write rendered HTML to standard output instead of a file")
	cmd.Flags().BoolVar(&flags.check, "check", false, "validate without writing output files")
	addSharedFlags(cmd, flags)

	return cmd
}

const convertLongDescription = `Convert Markdown files to HTML.

By default, converts all .md and .markdown files in the current directory
and subdirectories, writing each output next to its source with the
extension swapped for .html. Outputs whose rendered content is unchanged
are left untouched.

Examples:
  mdconv convert                     # Convert current directory
  mdconv convert docs/               # Convert docs directory
  mdconv convert README.md           # Convert single file
  mdconv convert --out-dir build     # Mirror the tree under build/
  mdconv convert --stdout README.md  # Print HTML to standard output
  mdconv convert --collect           # Report every error, write partial output`

func addSharedFlags(cmd *cobra.Command, flags *convertFlags) {
	cmd.Flags().BoolVar(&flags.collect, "collect", false,
		"report every parse error instead of stopping at the first")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0,
		"maximum HTML element nesting depth (0 = engine default)")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"file extensions treated as Markdown")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false,
		"traverse directory symlinks during discovery")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false,
		"hide source line context in diagnostics")
	cmd.Flags().BoolVar(&flags.summary, "summary", false,
		"print a full summary block after the run")
}

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.FromContext(ctx)

	// Only non-zero CLI values survive the merge, so unset flags never
	// shadow file or environment configuration.
	cliCfg := &config.Config{
		OutDir:         flags.outDir,
		Extensions:     flags.extensions,
		Exclude:        flags.exclude,
		Collect:        flags.collect,
		MaxDepth:       flags.maxDepth,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           flags.jobs,
		CheckOnly:      flags.check,
		Stdout:         flags.stdout,
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(ErrConfiguration, err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	renderOpts := render.Options{
		CollectErrors: cfg.Collect,
		MaxDepth:      cfg.MaxDepth,
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	errWriter := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, errWriter))
	width := pretty.TerminalWidth(errWriter)

	if cfg.Stdout {
		return convertToStdout(ctx, cmd, args, renderOpts, styles, width, !flags.noContext)
	}

	conv := runner.New(renderOpts)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     cfg.Extensions,
		ExcludeGlobs:   cfg.Exclude,
		FollowSymlinks: cfg.FollowSymlinks,
		Jobs:           cfg.Jobs,
		OutDir:         cfg.OutDir,
		CheckOnly:      cfg.CheckOnly,
		Render:         renderOpts,
	}

	logger.Debug("starting conversion run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldCheck, runOpts.CheckOnly,
	)

	result, err := conv.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(ErrIO, err)
	}

	reportFailures(cmd, result, styles, width, !flags.noContext)

	summaryWriter := cmd.OutOrStdout()
	if flags.summary {
		fmt.Fprint(summaryWriter, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(summaryWriter, styles.FormatSummaryOneLine(result.Stats))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrConversionFailed
	}

	return nil
}

// reportFailures prints per-file diagnostics to stderr, grouped by file.
// Source context is re-read from disk; files that vanished mid-run simply
// lose their quoted lines.
func reportFailures(cmd *cobra.Command, result *runner.Result, styles *pretty.Styles, width int, showContext bool) {
	errWriter := cmd.ErrOrStderr()

	for _, outcome := range result.Files {
		if !outcome.Failed() {
			continue
		}

		fmt.Fprintln(errWriter, styles.FormatFileHeader(outcome.Path, len(outcome.ParseErrors)))

		if outcome.Err != nil {
			fmt.Fprintf(errWriter, "  %s  %s\n", styles.Error.Render("error"), outcome.Err)
		}

		var src *mdsrc.Source
		if showContext && len(outcome.ParseErrors) > 0 {
			if content, err := os.ReadFile(outcome.Path); err == nil {
				src = mdsrc.New(outcome.Path, content)
			}
		}

		for _, parseErr := range outcome.ParseErrors {
			sourceLine := ""
			if src != nil {
				sourceLine = string(src.LineContent(parseErr.Line))
			}
			fmt.Fprint(errWriter, styles.FormatParseError(parseErr, showContext, sourceLine, width))
		}
	}
}

// convertToStdout renders a single file and prints the HTML to stdout.
// Diagnostics go to stderr so the HTML stream stays pipeable.
func convertToStdout(ctx context.Context, cmd *cobra.Command, args []string, renderOpts render.Options, styles *pretty.Styles, width int, showContext bool) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: --stdout requires exactly one input file, got %d", ErrUsage, len(args))
	}
	path := args[0]

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return errors.Join(ErrIO, err)
	}

	src := mdsrc.New(path, content)
	html, parseErrs := render.New(renderOpts).ConvertSource(src)

	errWriter := cmd.ErrOrStderr()
	for _, parseErr := range parseErrs {
		sourceLine := ""
		if showContext {
			sourceLine = string(src.LineContent(parseErr.Line))
		}
		fmt.Fprint(errWriter, styles.FormatParseError(parseErr, showContext, sourceLine, width))
	}

	// In fail-fast mode a parse error leaves no HTML worth printing; in
	// collect mode the partial output still goes out before the failure
	// is reported through the exit code.
	if len(parseErrs) > 0 && !renderOpts.CollectErrors {
		return ErrConversionFailed
	}

	fmt.Fprint(cmd.OutOrStdout(), html)

	if len(parseErrs) > 0 {
		return ErrConversionFailed
	}
	return nil
}
