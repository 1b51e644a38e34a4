package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/sllist/internal/logging"
	"github.com/aretw0/sllist/pkg/list"
	"github.com/aretw0/sllist/pkg/scenario"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
			// Context cancelled elsewhere
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// ReportInterrupt writes which signal, if any, ended the run.
func ReportInterrupt(w io.Writer, sc *SignalContext) {
	if sig := sc.Signal(); sig != nil {
		printSystemMessage(w, "Interrupted by %s.", sig)
	}
}

// createLogger configures the application logger.
// In debug mode, it writes to w (normally Stderr) to stay out of the list output.
func createLogger(w io.Writer, debug bool) *slog.Logger {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug)
	}
	return logging.NewNop()
}

func createDebugHooks(logger *slog.Logger) list.Hooks {
	return list.Hooks{
		OnCreate: func(e list.Event) {
			logger.Debug("Create", "value", e.Value, "len", e.Len)
		},
		OnAppend: func(e list.Event) {
			logger.Debug("Append", "value", e.Value, "len", e.Len)
		},
		OnDelete: func(e list.Event) {
			if e.Changed {
				logger.Debug("Delete", "value", e.Value, "len", e.Len)
			} else {
				logger.Debug("Delete (No Match)", "value", e.Value, "len", e.Len)
			}
		},
		OnView: func(e list.Event) {
			logger.Debug("View", "len", e.Len)
		},
	}
}

// loadSteps returns the steps in path, or the default driver when path is empty.
func loadSteps(path string) ([]scenario.Step, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isInterrupted reports cancellations (signals or a cancelled parent context).
// End of input is handled by the shell's scanner and never reaches here.
func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}
