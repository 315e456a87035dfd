package bulk

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlfst/ark"
	"github.com/katalvlaran/lvlfst/fst"
)

// Run streams every entry of r through fn and writes the results to w,
// in archive order.
//
// The first failure ends the run: a read or write error as-is, a
// transform error wrapped with the offending key. Entries written
// before the failure stay in the output archive. Under
// WithSkipBroken(true) transform failures are logged and skipped
// instead. Run does not close r or w.
//
// Complexity: O(n) entries with O(Jobs) lattices in flight.
// Determinism: output archive bytes are independent of Jobs.
func Run(r *ark.Reader, w *ark.Writer, fn Transform, opts ...Option) (Stats, error) {
	// 1. Validate arguments and fold the options.
	if r == nil || w == nil || fn == nil {
		return Stats{}, ErrNilArgument
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Ctx.Err(); err != nil {
		return Stats{}, err
	}

	// 2. Dispatch on worker count.
	if o.Jobs == 1 {
		return runSequential(r, w, fn, o)
	}

	return runParallel(r, w, fn, o)
}

// runSequential is the one-worker loop: read, transform, write, repeat.
func runSequential(r *ark.Reader, w *ark.Writer, fn Transform, o Options) (Stats, error) {
	var st Stats
	for r.Next() {
		if err := o.Ctx.Err(); err != nil {
			return st, err
		}
		st.Read++
		key := r.Key()

		out, err := fn(key, r.Lattice())
		if err != nil {
			if o.SkipBroken {
				st.Skipped++
				o.Logger.Warn("skipping entry", "key", key, "err", err)
				continue
			}

			return st, fmt.Errorf("bulk: entry %q: %w", key, err)
		}
		if err = w.Write(key, out); err != nil {
			return st, err
		}
		st.Written++
		o.Logger.Debug("wrote entry", "key", key)
	}

	return st, r.Err()
}

// task carries one entry from the producer through a worker to the
// consumer. done closes once out and err are set.
type task struct {
	key  string
	in   *fst.Lattice
	out  *fst.Lattice
	err  error
	done chan struct{}
}

// runParallel fans transforms out over o.Jobs workers while the
// consumer drains tasks in production order, so writes and fail-fast
// prefixes match the sequential run exactly.
func runParallel(r *ark.Reader, w *ark.Writer, fn Transform, o Options) (Stats, error) {
	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	work := make(chan *task)
	inOrder := make(chan *task, o.Jobs)

	// 1. Producer: read entries, hand each to a worker, then queue it
	//    for the consumer. The work send comes first so every task in
	//    inOrder is guaranteed to get its done channel closed.
	g.Go(func() error {
		defer close(inOrder)
		defer close(work)
		for r.Next() {
			t := &task{key: r.Key(), in: r.Lattice(), done: make(chan struct{})}
			select {
			case work <- t:
			case <-gctx.Done():
				return gctx.Err()
			}
			select {
			case inOrder <- t:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return r.Err()
	})

	// 2. Workers: transform until the work channel closes. No ctx
	//    select here: each accepted task must complete so the consumer
	//    never blocks on a done channel that would not close.
	for i := 0; i < o.Jobs; i++ {
		g.Go(func() error {
			for t := range work {
				t.out, t.err = fn(t.key, t.in)
				close(t.done)
			}

			return nil
		})
	}

	// 3. Consumer: runs on the calling goroutine, writing results in
	//    production order. After the first failure it cancels the
	//    group and keeps draining inOrder without writing.
	var st Stats
	var consumeErr error
	for t := range inOrder {
		if consumeErr != nil {
			continue
		}
		<-t.done
		st.Read++
		if t.err != nil {
			if o.SkipBroken {
				st.Skipped++
				o.Logger.Warn("skipping entry", "key", t.key, "err", t.err)
				continue
			}
			consumeErr = fmt.Errorf("bulk: entry %q: %w", t.key, t.err)
			cancel()
			continue
		}
		if err := w.Write(t.key, t.out); err != nil {
			consumeErr = err
			cancel()
			continue
		}
		st.Written++
		o.Logger.Debug("wrote entry", "key", t.key)
	}

	// 4. Settle the error: the consumer's failure wins, then any group
	//    failure that is not our own cancellation echo, then the
	//    caller's context. A nil Wait means the whole archive made it
	//    through, so a context canceled afterwards does not fail it.
	waitErr := g.Wait()
	switch {
	case consumeErr != nil:
		return st, consumeErr
	case waitErr == nil:
		return st, nil
	case !errors.Is(waitErr, context.Canceled):
		return st, waitErr
	default:
		return st, o.Ctx.Err()
	}
}
