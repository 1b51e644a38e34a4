package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/sllist/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const driverOutput = "The list value is: 1\nThe list value is: 2\nThe list value is: 3\n"

func TestRun_DefaultDriver(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), RunOptions{Out: &out, ErrOut: &errOut})

	require.NoError(t, err)
	assert.Equal(t, driverOutput, out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_ScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := "steps:\n  - create: 1\n  - append: 2\n  - append: 3\n  - append: 2\n  - delete: 2\n  - print\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	var out, errOut bytes.Buffer
	err := Run(context.Background(), RunOptions{ScenarioPath: path, Out: &out, ErrOut: &errOut})

	require.NoError(t, err)
	assert.Equal(t, "The list value is: 1\nThe list value is: 3\nThe list value is: 2\n", out.String())
}

func TestRun_BadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [{append: 1}]"), 0644))

	var out, errOut bytes.Buffer
	err := Run(context.Background(), RunOptions{ScenarioPath: path, Out: &out, ErrOut: &errOut})

	assert.ErrorIs(t, err, scenario.ErrNoList)
}

func TestRun_UnknownFormat(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), RunOptions{Format: "html", Out: &out, ErrOut: &errOut})

	assert.ErrorContains(t, err, "unknown format")
}

func TestRun_MarkdownFormat(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), RunOptions{
		Format: FormatMarkdown,
		Style:  "notty",
		Out:    &out,
		ErrOut: &errOut,
	})

	require.NoError(t, err)
	assert.NotContains(t, out.String(), "The list value is")
	assert.Contains(t, out.String(), "Value")
}

func TestRun_MetricsAndDebug(t *testing.T) {
	var out, errOut bytes.Buffer

	err := Run(context.Background(), RunOptions{Debug: true, Metrics: true, Out: &out, ErrOut: &errOut})

	require.NoError(t, err)
	assert.Equal(t, driverOutput, out.String())
	assert.Contains(t, errOut.String(), `msg=Append value=2 len=2`)
	assert.Contains(t, errOut.String(), `sllist_operations_total{op="append",outcome="linked"} 2`)
	assert.Contains(t, errOut.String(), "sllist_length 3")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	err := Run(ctx, RunOptions{Out: &out, ErrOut: &errOut})

	assert.NoError(t, err, "interruptions exit cleanly")
	assert.Empty(t, out.String())
}

func TestRunShell(t *testing.T) {
	input := strings.Join([]string{
		"append 2",
		"print",
		"create 1",
		"append 2",
		"append 3",
		"delete 1",
		"delete 99",
		"len",
		"print",
		"bogus",
		"quit",
		"append 4",
	}, "\n")

	var out, errOut bytes.Buffer
	err := RunShell(context.Background(), ShellOptions{
		In:     strings.NewReader(input),
		Out:    &out,
		ErrOut: &errOut,
	})
	require.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "The list value is: 1\nThe list value is: 2\n"), "shell starts seeded with 1: %q", got)
	assert.NotContains(t, got, "no list created")
	assert.Contains(t, got, "2\nThe list value is: 2\nThe list value is: 3\n")
	assert.Contains(t, got, `>>> Error: unknown op: "bogus"`)
	assert.Contains(t, got, ">>> Bye!")
	assert.NotContains(t, got, "The list value is: 4")
	assert.NotContains(t, got, "> append", "prompt is only shown on terminals")
}

func TestRunShell_EndOfInput(t *testing.T) {
	var out, errOut bytes.Buffer

	err := RunShell(context.Background(), ShellOptions{
		In:     strings.NewReader("create 5\ngraph\nhelp"),
		Out:    &out,
		ErrOut: &errOut,
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "n0[\"5\"]")
	assert.Contains(t, out.String(), "Commands:")
}

func TestRunGraph(t *testing.T) {
	var out bytes.Buffer

	err := RunGraph(context.Background(), GraphOptions{Highlight: []int{2}, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "n0 --> n1")
	assert.Contains(t, out.String(), "class n1 highlight;")
	assert.NotContains(t, out.String(), "The list value is")
}

func TestRun_CreateResetsLengthMetric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recreate.yaml")
	doc := "steps:\n  - create: 1\n  - append: 2\n  - append: 3\n  - create: 9\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	var out, errOut bytes.Buffer
	err := Run(context.Background(), RunOptions{ScenarioPath: path, Metrics: true, Out: &out, ErrOut: &errOut})

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "sllist_length 1\n")
	assert.Contains(t, errOut.String(), `sllist_operations_total{op="create",outcome="created"} 2`)
}

type eofWriter struct{}

func (eofWriter) Write([]byte) (int, error) {
	return 0, io.EOF
}

func TestRun_WriterEOFIsAnError(t *testing.T) {
	var errOut bytes.Buffer

	err := Run(context.Background(), RunOptions{Out: eofWriter{}, ErrOut: &errOut})

	assert.ErrorIs(t, err, io.EOF)
}

func TestReportInterrupt(t *testing.T) {
	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	var quiet bytes.Buffer
	ReportInterrupt(&quiet, sc)
	assert.Empty(t, quiet.String())

	sc.mu.Lock()
	sc.sigVal = os.Interrupt
	sc.mu.Unlock()

	var out bytes.Buffer
	ReportInterrupt(&out, sc)
	assert.Equal(t, ">>> Interrupted by interrupt.\n", out.String())
}
