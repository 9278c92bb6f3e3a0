package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arthur-debert/fixnames/pkg/fixnames"
	"github.com/arthur-debert/fixnames/pkg/fixnames/config"
	"github.com/arthur-debert/fixnames/pkg/fixnames/filesystem"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const longDescription = `fixnames renames files (and optionally directories) so their names only
use letters, digits, underscores, dashes and periods.

Rules, applied to the name without its extension:
  1 convert every character outside a-z A-Z 0-9 space _ - . to an underscore
  2 optionally convert uppercase to lowercase
  3 convert spaces to underscores
  4 optionally change periods to underscores, except a leading one
  5 squeeze repeated underscores, and turn "_-_" into "-"
  6 replace a leading dash with an underscore

An extension is a final period followed by 1 to 7 letters or digits; it is
only ever lowercased. Regular files are renamed before any directory, and
deeper paths before their parents. Existing names are never overwritten and
symbolic links are never renamed.

With no file arguments, or when the first argument is "-", paths are read
from standard input, one per line.`

const examples = `  fixnames *
        rename all files in the current directory

  fixnames --dry-run -D -- *
        show what renaming all files and directories here would do

  find sampledir -print | fixnames --dry-run
        recursively rename everything in sampledir`

// rootFlags holds the raw command line values.
type rootFlags struct {
	dirs       bool
	noDots     bool
	noLower    bool
	dryRun     bool
	verbose    bool
	debug      bool
	noColor    bool
	summary    bool
	configPath string
	maxStdin   int
}

// Execute runs the root command and exits non-zero on invalid invocation.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Try, %s --help for more information.\n", cmd.Name())
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fixnames [flags] [file]...",
		Short:         "Rename files to portable, sanitized names",
		Long:          longDescription,
		Example:       examples,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&flags.dirs, "dirs", "D", false, "rename directories too (default is regular files only)")
	f.BoolVarP(&flags.noDots, "nodots", "d", false, "do not change periods to underscores")
	f.BoolVarP(&flags.noLower, "nolower", "l", false, "do not convert names to lowercase")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "only display name changes, rename nothing")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "also report unchanged names, collisions and skipped directories")
	f.BoolVar(&flags.debug, "debug", false, "enable debug logging on stderr")
	f.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&flags.summary, "summary", false, "print a table of outcomes when done")
	f.StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/fixnames/config.toml)")
	f.IntVar(&flags.maxStdin, "max-stdin", config.DefaultMaxStdin, "maximum number of paths read from stdin, 0 for no limit")
	f.SetNormalizeFunc(normalizeFlagName)

	return cmd
}

// normalizeFlagName accepts the historical single-word spellings.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "dryrun":
		name = "dry-run"
	case "maxstdin":
		name = "max-stdin"
	case "nocolor":
		name = "no-color"
	}
	return pflag.NormalizedName(name)
}

func run(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	opts, maxStdin := resolveOptions(cmd.Flags(), flags, cfg)
	if maxStdin < 0 {
		return fmt.Errorf("--max-stdin must not be negative, got %d", maxStdin)
	}

	logger := fixnames.NewLogger(cmd.ErrOrStderr(), flags.debug)

	if wantsStdin(args) && isInteractive(cmd.InOrStdin()) {
		return errors.New("no files given and standard input is a terminal")
	}

	input, err := readPaths(cmd.InOrStdin(), args, maxStdin)
	if err != nil {
		return err
	}
	if input.truncated {
		warnTruncated(cmd.ErrOrStderr(), maxStdin)
	}
	logger.Debug().
		Bool("from_stdin", input.fromStdin).
		Int("count", len(input.paths)).
		Str("paths", strings.Join(input.paths, ", ")).
		Msg("received file list")

	executor := fixnames.NewExecutor(
		filesystem.NewOSFileSystem(),
		fixnames.WithLogger(logger),
		fixnames.WithReporter(newConsoleReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, flags.noColor)),
	)
	result := executor.Run(cmd.Context(), input.paths, opts)

	if flags.summary {
		printSummary(cmd.OutOrStdout(), result)
	}
	if result.Err != nil {
		return fmt.Errorf("stopped before finishing: %w", result.Err)
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// resolveOptions layers explicitly set flags over config file values.
func resolveOptions(fs *pflag.FlagSet, flags *rootFlags, cfg config.Config) (fixnames.Options, int) {
	opts := cfg.Options()
	maxStdin := cfg.MaxStdin

	if fs.Changed("dirs") {
		opts.RenameDirectories = flags.dirs
	}
	if fs.Changed("nodots") {
		opts.CollapseDots = !flags.noDots
	}
	if fs.Changed("nolower") {
		opts.Lowercase = !flags.noLower
	}
	if fs.Changed("verbose") {
		opts.Verbose = flags.verbose
	}
	if fs.Changed("max-stdin") {
		maxStdin = flags.maxStdin
	}
	opts.DryRun = flags.dryRun

	return opts, maxStdin
}
