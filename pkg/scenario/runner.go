package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/sllist/internal/logging"
	"github.com/aretw0/sllist/pkg/list"
)

// PrintFunc renders a list for a print step.
type PrintFunc func(w io.Writer, l *list.List) error

// Runner executes scenario steps against a single list.
type Runner struct {
	out     io.Writer
	logger  *slog.Logger
	hooks   list.Hooks
	printer PrintFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets the writer used by print steps. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithHooks attaches lifecycle hooks to every list the runner creates.
func WithHooks(hooks list.Hooks) Option {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// WithPrinter replaces the plain line printer used by print steps.
func WithPrinter(p PrintFunc) Option {
	return func(r *Runner) {
		r.printer = p
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		out:     os.Stdout,
		logger:  logging.NewNop(),
		printer: printPlain,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes steps in order and returns the resulting list.
// A create step after the first one starts a fresh list.
// The context is checked between steps; a cancelled run returns the list built so far.
func (r *Runner) Run(ctx context.Context, steps []Step) (*list.List, error) {
	var l *list.List

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return l, err
		}

		r.logger.Debug("Run Step", "index", i+1, "step", step.String())

		next, err := r.Apply(l, step)
		if err != nil {
			return l, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		l = next
	}

	r.logger.Debug("Scenario Finished", "steps", len(steps), "list", l.String())
	return l, nil
}

// Apply executes a single step against l and returns the list to use next.
// Only create replaces the list; every other op needs a non-nil l.
func (r *Runner) Apply(l *list.List, step Step) (*list.List, error) {
	if step.Op == OpCreate {
		if l != nil {
			r.logger.Debug("Discarding list", "list", l.String())
		}
		return list.New(step.Value, list.WithHooks(r.hooks)), nil
	}
	if !step.Op.Valid() {
		return l, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	if l == nil {
		return nil, ErrNoList
	}

	switch step.Op {
	case OpAppend:
		l.Append(step.Value)
	case OpDelete:
		l.Delete(step.Value)
	case OpPrint:
		if err := r.printer(r.out, l); err != nil {
			return l, err
		}
	}
	return l, nil
}

func printPlain(w io.Writer, l *list.List) error {
	return l.Print(w)
}
