package bulk

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlfst/fst"
)

// ErrNilArgument reports a nil reader, writer or transform handed to Run.
var ErrNilArgument = errors.New("bulk: nil argument")

// Transform rewrites a single archive entry. It may return the input
// lattice unchanged, a fresh lattice, or an error; it must not retain
// lat after returning when Run uses more than one worker.
type Transform func(key string, lat *fst.Lattice) (*fst.Lattice, error)

// Stats counts what a Run did with the archive. Read covers every
// entry pulled from the reader, including the one whose failure ended
// a fail-fast run.
type Stats struct {
	Read    int // entries consumed from the input archive
	Written int // entries that reached the output archive
	Skipped int // transform failures dropped under WithSkipBroken
}

// Options bundles the Run tunables. Zero values are not usable; build
// it with DefaultOptions and the With* helpers.
type Options struct {
	// Ctx cancels the run between entries.
	Ctx context.Context
	// Jobs is the number of concurrent transform workers.
	Jobs int
	// SkipBroken turns transform failures into skips instead of aborts.
	SkipBroken bool
	// Logger receives one debug line per written entry and one warning
	// per skipped entry.
	Logger *slog.Logger
}

// Option mutates Options before a Run starts.
type Option func(*Options)

// DefaultOptions returns the sequential, fail-fast, silent configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Jobs:   1,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext makes the run abort once ctx is done.
// Panics when ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("bulk: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithJobs sets the worker count. One worker keeps the run strictly
// sequential; more workers transform entries concurrently while the
// output order stays the archive order.
// Panics when jobs < 1.
func WithJobs(jobs int) Option {
	if jobs < 1 {
		panic("bulk: WithJobs requires at least one worker")
	}

	return func(o *Options) { o.Jobs = jobs }
}

// WithSkipBroken controls whether transform failures abort the run
// (false, the default) or are logged and skipped (true).
func WithSkipBroken(skip bool) Option {
	return func(o *Options) { o.SkipBroken = skip }
}

// WithLogger routes the per-entry debug lines and skip warnings to
// logger.
// Panics when logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("bulk: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = logger }
}
