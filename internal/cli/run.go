package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/sllist/internal/presentation/tui"
	"github.com/aretw0/sllist/pkg/list"
	"github.com/aretw0/sllist/pkg/observability"
	"github.com/aretw0/sllist/pkg/scenario"
)

// Output formats for print steps.
const (
	FormatPlain    = "plain"
	FormatMarkdown = "markdown"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ScenarioPath string // empty runs the default driver
	Format       string
	Style        string // glamour style for markdown output, empty for auto
	Debug        bool
	Metrics      bool
	Out          io.Writer
	ErrOut       io.Writer
}

// Run executes a scenario and writes print output to opts.Out.
// Logs and metrics go to opts.ErrOut.
func Run(ctx context.Context, opts RunOptions) error {
	logger := createLogger(opts.ErrOut, opts.Debug)

	steps, err := loadSteps(opts.ScenarioPath)
	if err != nil {
		return err
	}

	var hooks []list.Hooks
	if opts.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
		hooks = append(hooks, metrics.Hooks())
	}

	runnerOpts := []scenario.Option{
		scenario.WithOutput(opts.Out),
		scenario.WithLogger(logger),
		scenario.WithHooks(list.Chain(hooks...)),
	}

	switch opts.Format {
	case "", FormatPlain:
	case FormatMarkdown:
		render, err := tui.NewRenderer(opts.Style)
		if err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, scenario.WithPrinter(tui.NewListPrinter(render)))
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.Format, FormatPlain, FormatMarkdown)
	}

	l, runErr := scenario.NewRunner(runnerOpts...).Run(ctx, steps)
	logger.Info("Run Finished", "steps", len(steps), "list", l.String(), "err", runErr)

	if metrics != nil {
		if err := metrics.WriteText(opts.ErrOut); err != nil {
			logger.Warn("Failed to write metrics", "error", err)
		}
	}

	return handleExecutionError(runErr)
}
