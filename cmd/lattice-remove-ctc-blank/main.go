// Command lattice-remove-ctc-blank strips CTC blank symbols from every
// lattice in an archive and collapses the frame-level repeats they
// separate, writing the results to a second archive.
//
// Usage:
//
//	lattice-remove-ctc-blank [flags] <blank-symbol> <lat-rspecifier> <lat-wspecifier>
//
// The blank symbol is the positive integer label the acoustic model
// emits for "no output here". Archives are Kaldi-style tables:
//
//	lattice-remove-ctc-blank 42 ark:in.lats ark:out.lats
//	lattice-remove-ctc-blank --jobs 8 42 ark:in.lats ark,t:out.txt
//	cat in.lats | lattice-remove-ctc-blank 42 ark:- ark:- > out.lats
//
// The tool exits 0 when every entry was processed and 1 on the first
// failure; entries written before the failure remain in the output.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlfst/ark"
	"github.com/katalvlaran/lvlfst/bulk"
	"github.com/katalvlaran/lvlfst/ctc"
	"github.com/katalvlaran/lvlfst/fst"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lattice-remove-ctc-blank:", err)
		os.Exit(1)
	}
}

// newRootCmd builds a fresh command tree so tests can run invocations
// side by side without shared flag state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lattice-remove-ctc-blank [flags] <blank-symbol> <lat-rspecifier> <lat-wspecifier>",
		Short: "Remove CTC blank symbols from lattices in an archive",
		Long: `Reads lattices from <lat-rspecifier>, composes each with a blank-removal
filter that deletes <blank-symbol> arcs and collapses the repeated
emissions they separate, and writes the results to <lat-wspecifier>.

Only "ark:" tables are supported; add ",t" for the text format and use
"-" as the path for stdin or stdout.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().Int("jobs", 1, "number of concurrent transform workers")
	cmd.Flags().Bool("skip-broken", false, "skip entries that fail instead of aborting")
	cmd.Flags().String("config", "", "YAML file with defaults for these flags")
	cmd.Flags().String("log-level", "info", "log verbosity: debug, info, warn or error")
	cmd.Flags().Bool("log-json", false, "emit JSON logs instead of text")

	return cmd
}

// run wires the archive reader, the blank-removal transform and the
// archive writer together and reports the final counts.
func run(cmd *cobra.Command, args []string) error {
	// 1. Fold defaults, config file and flags.
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	// 2. Resolve the blank symbol before touching any archive.
	blank, err := parseBlank(args[0])
	if err != nil {
		return err
	}

	// 3. Open both archives.
	r, err := ark.NewReader(args[1])
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()
	w, err := ark.NewWriter(args[2])
	if err != nil {
		return err
	}

	// 4. Stream every entry through the filter.
	debug := logger.Enabled(cmd.Context(), slog.LevelDebug)
	st, runErr := bulk.Run(r, w,
		func(key string, lat *fst.Lattice) (*fst.Lattice, error) {
			out, err := ctc.RemoveBlank(lat, blank)
			if err != nil {
				return nil, err
			}
			if debug {
				// The product of an acyclic acceptor and the filter is
				// acyclic, so the forward pass cannot fail here.
				if best, err := out.ShortestDistance(); err == nil {
					logger.Debug("transformed", "key", key, "best", float64(best))
				}
			}

			return out, nil
		},
		bulk.WithContext(cmd.Context()),
		bulk.WithJobs(cfg.Jobs),
		bulk.WithSkipBroken(cfg.SkipBroken),
		bulk.WithLogger(logger),
	)
	if closeErr := w.Close(); runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		logger.Error("aborted",
			"err", runErr, "read", st.Read, "written", st.Written, "skipped", st.Skipped)

		return runErr
	}
	logger.Info("done",
		"read", st.Read, "written", st.Written, "skipped", st.Skipped)

	return nil
}

// parseBlank turns the positional blank-symbol argument into a label.
// Zero is refused here rather than once per entry: it is the epsilon
// label and can never be a real emission.
func parseBlank(arg string) (fst.Label, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("blank symbol must be a non-negative integer, got %q", arg)
	}
	if fst.Label(n) == fst.Epsilon {
		return 0, fmt.Errorf("blank symbol %q: %w", arg, ctc.ErrInvalidBlank)
	}

	return fst.Label(n), nil
}
