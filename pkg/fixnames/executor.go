package fixnames

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/arthur-debert/fixnames/pkg/fixnames/filesystem"
	"github.com/rs/zerolog"
)

// Executor renames a batch of paths.
type Executor struct {
	fs       filesystem.FileSystem
	logger   zerolog.Logger
	reporter Reporter
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(logger zerolog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithReporter sets where per-entry reports go as they are decided.
func WithReporter(reporter Reporter) ExecutorOption {
	return func(e *Executor) {
		e.reporter = reporter
	}
}

// NewExecutor creates a new Executor working on fsys.
func NewExecutor(fsys filesystem.FileSystem, opts ...ExecutorOption) *Executor {
	e := &Executor{
		fs:       fsys,
		logger:   zerolog.Nop(),
		reporter: NopReporter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run classifies and orders paths, then processes every regular file before
// any directory. A failure on one entry never stops the batch; only the end
// of ctx does, between two entries.
func (e *Executor) Run(ctx context.Context, paths []string, opts Options) *Result {
	start := time.Now()
	result := newResult()

	e.logger.Debug().
		Bool("rename_directories", opts.RenameDirectories).
		Bool("collapse_dots", opts.CollapseDots).
		Bool("lowercase", opts.Lowercase).
		Bool("dry_run", opts.DryRun).
		Bool("verbose", opts.Verbose).
		Msg("options")

	files, dirs, skipped := Order(e.classify(paths))

	e.logger.Info().
		Int("files", len(files)).
		Int("directories", len(dirs)).
		Int("skipped", len(skipped)).
		Msg("starting batch")

	phases := []struct {
		entries []Entry
		handle  func(Entry, Options) (Report, bool)
	}{
		{skipped, e.skip},
		{files, e.file},
		{dirs, e.directory},
	}

	for _, phase := range phases {
		for _, entry := range phase.entries {
			if err := ctx.Err(); err != nil {
				e.logger.Warn().Err(err).Msg("batch interrupted")
				result.Err = err
				result.Duration = time.Since(start)
				return result
			}
			rep, ok := phase.handle(entry, opts)
			if !ok {
				continue
			}
			result.add(rep)
			e.reporter.Report(rep)
		}
	}

	result.Duration = time.Since(start)
	e.logger.Info().
		Int("renamed", result.Counts[DecisionRenamed]).
		Int("would_rename", result.Counts[DecisionWouldRename]).
		Int("failed", result.Counts[DecisionRenameFailed]).
		Dur("duration", result.Duration).
		Msg("batch finished")
	return result
}

// classify looks at every path once. Repeated paths, including ones that
// differ only by trailing separators, are dropped so that an entry renamed
// earlier in the batch is not reported again as a collision.
func (e *Executor) classify(paths []string) []Entry {
	seen := make(map[string]bool, len(paths))
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		key := SplitPath(p, KindDirectory).Join()
		if seen[key] {
			e.logger.Debug().Str("path", p).Msg("duplicate path ignored")
			continue
		}
		seen[key] = true

		kind, err := Classify(e.fs, p)
		if err != nil {
			e.logger.Debug().Str("path", p).Err(err).Msg("cannot access path")
		}
		entries = append(entries, Entry{Path: p, Kind: kind})
	}
	return entries
}

func (e *Executor) skip(entry Entry, opts Options) (Report, bool) {
	rep := Report{Kind: entry.Kind, Source: entry.Path, DryRun: opts.DryRun}
	switch entry.Kind {
	case KindSymlink:
		rep.Decision = DecisionSkipSymlink
		rep.Err = ErrSymlink
	case KindOther:
		rep.Decision = DecisionSkipUnsupported
		rep.Err = ErrUnsupported
	default:
		rep.Decision = DecisionSkipMissing
		rep.Err = ErrNotFound
	}
	e.logger.Debug().Str("path", entry.Path).Stringer("kind", entry.Kind).Msg("skipping entry")
	return rep, true
}

func (e *Executor) file(entry Entry, opts Options) (Report, bool) {
	return e.Process(entry, opts), true
}

func (e *Executor) directory(entry Entry, opts Options) (Report, bool) {
	if isDotEntry(entry.Path) {
		e.logger.Debug().Str("path", entry.Path).Msg("never renaming dot directory")
		return Report{}, false
	}
	if !opts.RenameDirectories {
		return Report{
			Decision: DecisionSkipDirectory,
			Kind:     KindDirectory,
			Source:   entry.Path,
			DryRun:   opts.DryRun,
		}, true
	}
	return e.Process(entry, opts), true
}

// Process computes the clean name for a single classified entry and renames
// it when that is allowed. Only the last path component is rewritten.
func (e *Executor) Process(entry Entry, opts Options) Report {
	parts := SplitPath(entry.Path, entry.Kind)
	cleaned := parts.Sanitized(opts.Sanitizer())

	rep := Report{
		Kind:   entry.Kind,
		Source: parts.Join(),
		Target: cleaned.Join(),
		DryRun: opts.DryRun,
	}

	e.logger.Debug().
		Str("path", entry.Path).
		Str("dir", parts.Dir).
		Str("base", parts.Base).
		Str("ext", parts.Ext).
		Str("target", rep.Target).
		Msg("computed name")

	rep.Decision, rep.Err = e.decide(rep.Source, rep.Target, opts)
	if rep.Err != nil && rep.Decision == DecisionRenameFailed {
		e.logger.Debug().Err(rep.Err).Msg("rename failed")
	}
	return rep
}

func (e *Executor) decide(source, target string, opts Options) (Decision, error) {
	if source == target {
		return DecisionUnchanged, nil
	}

	if _, err := e.fs.Lstat(target); err == nil {
		return DecisionCollision, ErrCollision
	} else if !errors.Is(err, fs.ErrNotExist) {
		return DecisionRenameFailed, &RenameError{Source: source, Target: target, Cause: err}
	}

	if opts.DryRun {
		return DecisionWouldRename, nil
	}

	if err := e.fs.Rename(source, target); err != nil {
		return DecisionRenameFailed, &RenameError{Source: source, Target: target, Cause: err}
	}
	return DecisionRenamed, nil
}
