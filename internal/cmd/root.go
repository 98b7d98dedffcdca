package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/harrison/grepr/internal/config"
	"github.com/harrison/grepr/internal/display"
	"github.com/harrison/grepr/internal/logger"
	"github.com/harrison/grepr/internal/models"
	"github.com/harrison/grepr/internal/search"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ExitError carries a non-zero exit status out of RunE without printing anything
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCommand creates the grepr command. stdin backs the "-" target and
// getenv (usually os.Getenv) supplies GREPR_* settings.
func NewRootCommand(stdin io.Reader, getenv func(string) string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grepr [flags] PATTERN [FILE]...",
		Short: "Search files for lines matching a pattern",
		Long: `grepr prints every line of its input that matches PATTERN.

Input is read from each FILE in order, or from standard input when no FILE
is given or FILE is "-". Directories are searched with --recursive.

Exit status is 0 if a line matched, 1 if nothing matched and 2 if any
file could not be read or the pattern is invalid.`,
		Version:      Version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		// Errors are printed once by Execute
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, stdin, getenv)
		},
	}

	cmd.Flags().BoolP("recursive", "r", false, "Search directories recursively")
	cmd.Flags().BoolP("count", "c", false, "Print only a count of matching lines per file")
	cmd.Flags().BoolP("invert-match", "v", false, "Select non-matching lines")
	cmd.Flags().BoolP("insensitive", "i", false, "Ignore case distinctions")
	cmd.Flags().BoolP("fixed-strings", "F", false, "Interpret PATTERN as a literal string")
	cmd.Flags().BoolP("extended-regexp", "E", false, "Interpret PATTERN as a POSIX extended regular expression")
	cmd.Flags().BoolP("perl-regexp", "P", false, "Interpret PATTERN as a Perl-compatible regular expression")
	cmd.Flags().BoolP("text", "a", false, "Search binary files found during recursion")
	cmd.Flags().StringSlice("exclude-dir", nil, "Skip directories with this name during recursion (repeatable)")
	cmd.Flags().Bool("gitignore", false, "Honor .gitignore files during recursion")
	cmd.Flags().BoolP("with-filename", "H", false, "Always prefix lines with the file name")
	cmd.Flags().Bool("no-filename", false, "Never prefix lines with the file name")
	cmd.Flags().String("format", "", "Output format: text, json or yaml (default text)")
	cmd.Flags().String("color", "", "Color output: auto, always or never (default auto)")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn or error (default warn)")
	cmd.Flags().String("log-file", "", "Append log records to this file")
	// Defining the version flag here keeps -v free for --invert-match
	cmd.Flags().BoolP("version", "V", false, "Print version information and exit")

	cmd.MarkFlagsMutuallyExclusive("fixed-strings", "extended-regexp", "perl-regexp")
	cmd.MarkFlagsMutuallyExclusive("with-filename", "no-filename")

	return cmd
}

// Execute runs grepr with args and returns the process exit status
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	cmd := NewRootCommand(stdin, getenv)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return display.ExitMatch
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	display.Diagnostic(stderr, err)
	return display.ExitError
}

// resolveConfig layers flags over GREPR_* variables over defaults
func resolveConfig(cmd *cobra.Command, getenv func(string) string) (*config.Config, error) {
	cfg := config.LoadFromEnv(getenv)

	changed := func(name string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetString(name)
		return &v
	}
	cfg.MergeWithFlags(changed("log-level"), changed("log-file"), changed("color"), changed("format"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// buildLogger creates the console logger and, with --log-file, the file logger
func buildLogger(cfg *config.Config, stderr io.Writer) (*logger.MultiLogger, error) {
	console := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if cfg.Color != display.ColorAuto {
		console.SetColor(display.ResolveColor(cfg.Color, stderr))
	}

	if cfg.LogFile == "" {
		return logger.NewMultiLogger(console), nil
	}

	file, err := logger.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.NewMultiLogger(console, file), nil
}

// buildRequest maps flags and positional arguments onto a SearchRequest
func buildRequest(cmd *cobra.Command, args []string) models.SearchRequest {
	flags := cmd.Flags()
	recursive, _ := flags.GetBool("recursive")
	count, _ := flags.GetBool("count")
	invert, _ := flags.GetBool("invert-match")
	insensitive, _ := flags.GetBool("insensitive")
	fixed, _ := flags.GetBool("fixed-strings")
	extended, _ := flags.GetBool("extended-regexp")
	perl, _ := flags.GetBool("perl-regexp")
	text, _ := flags.GetBool("text")
	excludeDirs, _ := flags.GetStringSlice("exclude-dir")
	gitignore, _ := flags.GetBool("gitignore")

	engine := models.EngineRegexp
	switch {
	case fixed:
		engine = models.EngineFixed
	case extended:
		engine = models.EnginePOSIX
	case perl:
		engine = models.EnginePCRE
	}

	return models.SearchRequest{
		Pattern:          args[0],
		Targets:          args[1:],
		Recursive:        recursive,
		CountOnly:        count,
		Invert:           invert,
		CaseInsensitive:  insensitive,
		Engine:           engine,
		IncludeBinary:    text,
		ExcludeDirs:      excludeDirs,
		RespectGitignore: gitignore,
	}
}

// labelMode maps -H / --no-filename onto a display.LabelMode
func labelMode(cmd *cobra.Command) display.LabelMode {
	withFilename, _ := cmd.Flags().GetBool("with-filename")
	noFilename, _ := cmd.Flags().GetBool("no-filename")
	switch {
	case withFilename:
		return display.LabelAlways
	case noFilename:
		return display.LabelNever
	default:
		return display.LabelAuto
	}
}

func runSearch(cmd *cobra.Command, args []string, stdin io.Reader, getenv func(string) string) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := resolveConfig(cmd, getenv)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg, stderr)
	if err != nil {
		return err
	}

	req := buildRequest(cmd, args)
	log.LogDebug(fmt.Sprintf("searching %d target(s) with the %s engine", len(req.EffectiveTargets()), req.EffectiveEngine()))

	started := time.Now()
	events, err := search.NewEngine(stdin, log).Run(ctx, req)
	if err != nil {
		return err
	}

	formatter, err := display.NewFormatter(stdout, display.Options{
		Format:      cfg.Format,
		Labels:      labelMode(cmd),
		MultiTarget: len(req.Targets) > 1,
		Color:       display.ResolveColor(cfg.Color, stdout),
	})
	if err != nil {
		return err
	}

	tally, err := display.Render(events, formatter, stderr)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		log.LogInfo("search cancelled")
		return &ExitError{Code: display.ExitError}
	}

	log.LogInfo(fmt.Sprintf("search finished in %s: %d line(s), %d count(s) above zero, %d error(s)",
		logger.FormatDuration(time.Since(started)), tally.Matches, tally.PositiveSources, tally.Errors))

	if code := tally.ExitCode(); code != display.ExitMatch {
		return &ExitError{Code: code}
	}
	return nil
}
