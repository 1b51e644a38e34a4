package scenario_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aretw0/sllist/pkg/list"
	"github.com/aretw0/sllist/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Default(t *testing.T) {
	var out bytes.Buffer
	r := scenario.NewRunner(scenario.WithOutput(&out))

	l, err := r.Run(context.Background(), scenario.Default())
	require.NoError(t, err)

	want := "The list value is: 1\nThe list value is: 2\nThe list value is: 3\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, 3, l.Len())
}

func TestRunner_DeleteEverything(t *testing.T) {
	var out bytes.Buffer
	r := scenario.NewRunner(scenario.WithOutput(&out))

	steps := []scenario.Step{
		{Op: scenario.OpCreate, Value: 1},
		{Op: scenario.OpAppend, Value: 2},
		{Op: scenario.OpDelete, Value: 1},
		{Op: scenario.OpDelete, Value: 2},
		{Op: scenario.OpPrint},
	}

	l, err := r.Run(context.Background(), steps)
	require.NoError(t, err)

	assert.True(t, l.IsEmpty())
	assert.Empty(t, out.String())
}

func TestRunner_CreateStartsFreshList(t *testing.T) {
	r := scenario.NewRunner(scenario.WithOutput(io.Discard))

	steps := []scenario.Step{
		{Op: scenario.OpCreate, Value: 1},
		{Op: scenario.OpAppend, Value: 2},
		{Op: scenario.OpCreate, Value: 9},
	}

	l, err := r.Run(context.Background(), steps)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, l.Values())
}

func TestRunner_StepBeforeCreate(t *testing.T) {
	r := scenario.NewRunner(scenario.WithOutput(io.Discard))

	_, err := r.Run(context.Background(), []scenario.Step{{Op: scenario.OpAppend, Value: 1}})

	assert.ErrorIs(t, err, scenario.ErrNoList)
}

func TestRunner_UnknownOp(t *testing.T) {
	r := scenario.NewRunner(scenario.WithOutput(io.Discard))

	steps := []scenario.Step{
		{Op: scenario.OpCreate, Value: 1},
		{Op: "reverse"},
	}

	l, err := r.Run(context.Background(), steps)

	assert.ErrorIs(t, err, scenario.ErrUnknownOp)
	assert.Equal(t, []int{1}, l.Values())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := scenario.NewRunner(scenario.WithOutput(io.Discard))
	_, err := r.Run(ctx, scenario.Default())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_CustomPrinterAndHooks(t *testing.T) {
	var appended []int
	var printed []string

	r := scenario.NewRunner(
		scenario.WithOutput(io.Discard),
		scenario.WithHooks(list.Hooks{
			OnAppend: func(e list.Event) { appended = append(appended, e.Value) },
		}),
		scenario.WithPrinter(func(w io.Writer, l *list.List) error {
			printed = append(printed, l.String())
			return nil
		}),
	)

	_, err := r.Run(context.Background(), scenario.Default())
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, appended)
	assert.Equal(t, []string{"[1 2 3]"}, printed)
}

func TestRunner_PrinterError(t *testing.T) {
	boom := errors.New("boom")
	r := scenario.NewRunner(scenario.WithPrinter(func(io.Writer, *list.List) error {
		return boom
	}))

	_, err := r.Run(context.Background(), scenario.Default())

	assert.ErrorIs(t, err, boom)
}

func TestRunner_Apply(t *testing.T) {
	var out bytes.Buffer
	r := scenario.NewRunner(scenario.WithOutput(&out))

	_, err := r.Apply(nil, scenario.Step{Op: scenario.OpDelete, Value: 1})
	require.ErrorIs(t, err, scenario.ErrNoList)

	l, err := r.Apply(nil, scenario.Step{Op: scenario.OpCreate, Value: 5})
	require.NoError(t, err)

	same, err := r.Apply(l, scenario.Step{Op: scenario.OpAppend, Value: 6})
	require.NoError(t, err)
	assert.Same(t, l, same)

	_, err = r.Apply(l, scenario.Step{Op: scenario.OpPrint})
	require.NoError(t, err)
	assert.Equal(t, "The list value is: 5\nThe list value is: 6\n", out.String())
}
