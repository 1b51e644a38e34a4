package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/sllist/internal/presentation/graph"
	"github.com/aretw0/sllist/internal/presentation/tui"
	"github.com/aretw0/sllist/pkg/list"
	"github.com/aretw0/sllist/pkg/scenario"
)

const shellHelp = `Commands:
  create N   start a new list holding N
  append N   link N after the tail
  delete N   remove the first node holding N
  print      print every value
  len        print the number of nodes
  graph      print a Mermaid diagram of the list
  help       show this message
  quit       leave the shell`

// ShellOptions configures the interactive shell.
type ShellOptions struct {
	In      io.Reader
	Out     io.Writer
	ErrOut  io.Writer
	Debug   bool
	Version string
}

// RunShell reads commands line by line and applies them to a single list.
// The list starts as [1]; create replaces it.
// It returns nil on quit, end of input or interruption.
func RunShell(ctx context.Context, opts ShellOptions) error {
	logger := createLogger(opts.ErrOut, opts.Debug)
	interactive := isTerminal(opts.Out)

	if interactive {
		tui.PrintBanner(opts.Out, opts.Version)
		printSystemMessage(opts.Out, "Type 'help' for commands.")
	}

	var hooks list.Hooks
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	r := scenario.NewRunner(
		scenario.WithOutput(opts.Out),
		scenario.WithLogger(logger),
		scenario.WithHooks(hooks),
	)

	// Seeded like the default driver until the user runs create.
	l, err := r.Apply(nil, scenario.Step{Op: scenario.OpCreate, Value: scenario.Default()[0].Value})
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(opts.In)
	for {
		if err := ctx.Err(); err != nil {
			return handleExecutionError(err)
		}
		if interactive {
			fmt.Fprint(opts.Out, "> ")
		}
		if !scanner.Scan() {
			return handleExecutionError(scanner.Err())
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			printSystemMessage(opts.Out, "Bye!")
			return nil
		case "help":
			fmt.Fprintln(opts.Out, shellHelp)
			continue
		case "len":
			fmt.Fprintln(opts.Out, l.Len())
			continue
		case "graph":
			fmt.Fprint(opts.Out, graph.GenerateMermaid(l, nil))
			continue
		}

		step, err := scenario.ParseLine(line)
		if err != nil {
			printSystemMessage(opts.Out, "Error: %v", err)
			continue
		}

		next, err := r.Apply(l, step)
		if err != nil {
			printSystemMessage(opts.Out, "Error: %v", err)
			continue
		}
		l = next
		logger.Debug("Shell Step", "step", step.String(), "list", l.String())
	}
}
