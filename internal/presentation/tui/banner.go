package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the shell banner with the version underneath.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  ___ _ _ _    _   ", "#818cf8"},
		{" / __| | (_)__| |_ ", "#a78bfa"},
		{" \\__ \\ | | (_-<  _|", "#e879f9"},
		{" |___/_|_|_/__/\\__|", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w, termenv.String(" v"+version).Faint())
	fmt.Fprintln(w)
}
