package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/sllist/pkg/list"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects a light or dark background automatically.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// MarkdownTable formats list values as a markdown table of position and value.
func MarkdownTable(l *list.List) string {
	var sb strings.Builder
	sb.WriteString("| # | Value |\n")
	sb.WriteString("|---|-------|\n")

	i := 0
	for v := range l.View() {
		sb.WriteString(fmt.Sprintf("| %d | %d |\n", i, v))
		i++
	}
	if i == 0 {
		sb.WriteString("\n_The list is empty._\n")
	}
	return sb.String()
}

// NewListPrinter returns a printer that writes the list as rendered markdown.
func NewListPrinter(render func(string) (string, error)) func(io.Writer, *list.List) error {
	return func(w io.Writer, l *list.List) error {
		out, err := render(MarkdownTable(l))
		if err != nil {
			return fmt.Errorf("failed to render list: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	}
}
