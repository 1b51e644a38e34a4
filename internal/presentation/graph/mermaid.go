package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sllist/pkg/list"
)

// Overlay marks values to highlight on the diagram.
type Overlay struct {
	Highlight []int
}

// GenerateMermaid produces a Mermaid flowchart (graph LR) of the chain.
// Shapes:
// - Head handle: ((Circle))
// - Node: [Rectangle]
// - End of chain: [/Parallelogram/]
// Every node matching an overlay value gets the "highlight" class.
func GenerateMermaid(l *list.List, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString("    head((\"head\"))\n")

	prev := "head"
	var ids []string
	var values []int
	for v := range l.View() {
		id := fmt.Sprintf("n%d", len(ids))
		sb.WriteString(fmt.Sprintf("    %s[\"%d\"]\n", id, v))
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, id))
		ids = append(ids, id)
		values = append(values, v)
		prev = id
	}

	sb.WriteString("    nil[/\"nil\"/]\n")
	sb.WriteString(fmt.Sprintf("    %s --> nil\n", prev))

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		marked := make(map[int]bool, len(overlay.Highlight))
		for _, v := range overlay.Highlight {
			marked[v] = true
		}
		for i, v := range values {
			if marked[v] {
				sb.WriteString(fmt.Sprintf("    class %s highlight;\n", ids[i]))
			}
		}
	}

	return sb.String()
}
