package tui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/sllist/internal/presentation/tui"
	"github.com/aretw0/sllist/pkg/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownTable(t *testing.T) {
	l := list.New(1)
	l.Append(2)

	got := tui.MarkdownTable(l)

	assert.Contains(t, got, "| 0 | 1 |")
	assert.Contains(t, got, "| 1 | 2 |")
	assert.NotContains(t, got, "empty")
}

func TestMarkdownTable_Empty(t *testing.T) {
	got := tui.MarkdownTable(list.NewEmpty())

	assert.Contains(t, got, "The list is empty.")
}

func TestNewListPrinter(t *testing.T) {
	render, err := tui.NewRenderer("notty")
	require.NoError(t, err)

	l := list.New(41)
	l.Append(42)

	var buf bytes.Buffer
	require.NoError(t, tui.NewListPrinter(render)(&buf, l))

	assert.Contains(t, buf.String(), "41")
	assert.Contains(t, buf.String(), "42")
}

func TestNewListPrinter_RenderError(t *testing.T) {
	boom := errors.New("boom")
	printer := tui.NewListPrinter(func(string) (string, error) { return "", boom })

	err := printer(&bytes.Buffer{}, list.New(1))

	assert.ErrorIs(t, err, boom)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer

	tui.PrintBanner(&buf, "1.2.3")

	assert.Contains(t, buf.String(), "v1.2.3")
}
