// Package cmd provides the CLI commands for fzgrep.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fzgrep/fzgrep/internal/collect"
	"github.com/fzgrep/fzgrep/internal/config"
	errs "github.com/fzgrep/fzgrep/internal/errors"
	"github.com/fzgrep/fzgrep/internal/logging"
	"github.com/fzgrep/fzgrep/internal/pipeline"
	"github.com/fzgrep/fzgrep/internal/render"
	"github.com/fzgrep/fzgrep/internal/source"
	"github.com/fzgrep/fzgrep/pkg/version"
)

// matched records whether the last run produced any results, for exit-code
// selection in Execute.
var matched bool

// options holds the root command's flag values.
type options struct {
	recursive    bool
	lineNumbers  bool
	withFilename bool
	noFilename   bool
	context      int
	before       int
	after        int
	top          int
	quiet        bool
	verbose      bool
	color        string
	include      []string
	exclude      []string
}

// Execute runs the root command and returns the process exit code:
// 0 when something matched, 1 when nothing did, 2 on failure.
func Execute() int {
	matched = false
	if err := NewRootCmd().Execute(); err != nil {
		return errs.ExitError
	}
	return errs.ExitCode(matched, nil)
}

// NewRootCmd creates the root command for the fzgrep CLI.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fzgrep PATTERN [TARGET...]",
		Short: "Fuzzy grep: find lines resembling a pattern",
		Long: `fzgrep searches files for lines that fuzzily match a pattern and prints
them best match first. Unlike grep it does not need an exact substring:
characters of the pattern only have to appear in the line in order, and
lines are ranked by how well they resemble the pattern.

With no TARGET the standard input is searched.`,
		Version:       version.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate("fzgrep version {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Search directories recursively")
	flags.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "Print 1-based line numbers")
	flags.BoolVarP(&opts.withFilename, "with-filename", "f", false, "Print file names (default when searching multiple files)")
	flags.BoolVarP(&opts.noFilename, "no-filename", "F", false, "Never print file names")
	flags.IntVarP(&opts.context, "context", "C", 0, "Print NUM lines of context around each match")
	flags.IntVarP(&opts.before, "before-context", "B", 0, "Print NUM lines of leading context")
	flags.IntVarP(&opts.after, "after-context", "A", 0, "Print NUM lines of trailing context")
	flags.IntVar(&opts.top, "top", 0, "Keep only the NUM best matches (0 keeps all)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Print nothing; the exit code tells whether anything matched")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.color, "color", "", "Color the output: auto, always or never")
	flags.StringArrayVar(&opts.include, "include", nil, "Search only files matching GLOB (recursive scans)")
	flags.StringArrayVar(&opts.exclude, "exclude", nil, "Skip files matching GLOB (recursive scans)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	if opts.verbose {
		logging.Setup(logging.VerboseConfig())
	} else {
		logging.Setup(logging.Config{Level: cfg.Log.Level, Output: cmd.ErrOrStderr()})
	}

	applyConfig(cmd, opts, cfg)

	before, after, err := resolveContext(cmd, opts)
	if err != nil {
		return err
	}
	if opts.top < 0 {
		return errs.ValidationError(fmt.Sprintf("--top must be non-negative, got %d", opts.top), nil)
	}
	if opts.withFilename && opts.noFilename {
		return errs.ValidationError("--with-filename and --no-filename are mutually exclusive", nil)
	}

	mode, err := render.ParseMode(opts.color)
	if err != nil {
		return errs.New(errs.ErrCodeInvalidFlag, err.Error(), err)
	}

	query := args[0]
	sources, openErrs, err := openSources(args[1:], opts)
	if err != nil {
		return err
	}

	pipelineOpts := pipeline.Options{
		BeforeContext:    before,
		AfterContext:     after,
		TrackLineNumbers: opts.lineNumbers,
		TrackSourceNames: showFilenames(opts, sources),
		CacheSize:        cfg.Search.CacheSize,
	}

	var collector collect.Collector
	if opts.top > 0 {
		collector = collect.NewTopBracket(opts.top)
	} else {
		collector = collect.NewUnbounded()
	}

	records, runErr := pipeline.Run(query, sources, pipelineOpts, collector)
	matched = len(records) > 0

	if !opts.quiet {
		out := cmd.OutOrStdout()
		renderer := render.New(out, render.StylesFor(mode, out))
		if err := renderer.Render(records); err != nil {
			return errs.IOError("failed to write results", err)
		}
	}

	if runErr != nil {
		return errs.IOError("some sources could not be searched", runErr)
	}
	if len(openErrs) > 0 {
		return openErrs[0]
	}
	return nil
}

// applyConfig fills in defaults from the configuration for every flag the
// user did not set on the command line.
func applyConfig(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("before-context") && !flags.Changed("context") {
		opts.before = cfg.Search.BeforeContext
	}
	if !flags.Changed("after-context") && !flags.Changed("context") {
		opts.after = cfg.Search.AfterContext
	}
	if !flags.Changed("top") {
		opts.top = cfg.Search.Top
	}
	if opts.color == "" {
		opts.color = cfg.Output.Color
	}
	if !flags.Changed("include") {
		opts.include = cfg.Search.Include
	}
	if !flags.Changed("exclude") {
		opts.exclude = cfg.Search.Exclude
	}
}

// resolveContext folds -C into -B/-A: --context sets both sides unless the
// specific flag was given too.
func resolveContext(cmd *cobra.Command, opts *options) (before, after int, err error) {
	before, after = opts.before, opts.after
	if cmd.Flags().Changed("context") {
		if !cmd.Flags().Changed("before-context") {
			before = opts.context
		}
		if !cmd.Flags().Changed("after-context") {
			after = opts.context
		}
	}
	if before < 0 || after < 0 {
		return 0, 0, errs.ValidationError("context sizes must be non-negative", nil)
	}
	return before, after, nil
}

// openSources turns the target arguments into open sources. No targets
// means the standard input. Files that cannot be opened are skipped with a
// warning and reported back so the run can still fail with exit code 2.
func openSources(targets []string, opts *options) ([]*source.Source, []error, error) {
	if len(targets) == 0 {
		return []*source.Source{source.Stdin()}, nil, nil
	}

	filter, err := source.NewFilter(opts.include, opts.exclude)
	if err != nil {
		return nil, nil, errs.New(errs.ErrCodeInvalidPattern, err.Error(), err)
	}

	files, err := source.Expand(targets, opts.recursive, filter)
	if err != nil {
		return nil, nil, errs.IOError(err.Error(), err)
	}

	var sources []*source.Source
	var openErrs []error
	for _, file := range files {
		src, err := source.File(file)
		if err != nil {
			slog.Warn("skipping unreadable file",
				slog.String("path", file), slog.String("error", err.Error()))
			openErrs = append(openErrs, errs.New(errs.ErrCodeFileNotFound, err.Error(), err))
			continue
		}
		sources = append(sources, src)
	}
	return sources, openErrs, nil
}

// showFilenames decides whether results carry their file name: on when
// searching more than one file, overridable both ways by flags.
func showFilenames(opts *options, sources []*source.Source) bool {
	if opts.noFilename {
		return false
	}
	if opts.withFilename {
		return true
	}
	return len(sources) > 1
}
