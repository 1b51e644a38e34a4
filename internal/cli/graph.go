package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/sllist/internal/presentation/graph"
	"github.com/aretw0/sllist/pkg/scenario"
)

// GraphOptions configures the graph export.
type GraphOptions struct {
	ScenarioPath string
	Highlight    []int
	Out          io.Writer
}

// RunGraph executes a scenario silently and writes a Mermaid diagram of the resulting list.
func RunGraph(ctx context.Context, opts GraphOptions) error {
	steps, err := loadSteps(opts.ScenarioPath)
	if err != nil {
		return err
	}

	l, err := scenario.NewRunner(scenario.WithOutput(io.Discard)).Run(ctx, steps)
	if err != nil {
		return fmt.Errorf("failed to build list: %w", err)
	}

	var overlay *graph.Overlay
	if len(opts.Highlight) > 0 {
		overlay = &graph.Overlay{Highlight: opts.Highlight}
	}

	_, err = io.WriteString(opts.Out, graph.GenerateMermaid(l, overlay))
	return err
}
