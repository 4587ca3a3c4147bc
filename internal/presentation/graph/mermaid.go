package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/orderbot/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart from the graph description.
// It applies semantic styling:
// - START and END: ((Circle))
// - Input steps: [/Parallelogram/]
// - Logic steps: [[Subroutine]]
// - Output steps: [Rectangle]
// Conditional edges are dotted and labelled with the selector name.
func GenerateMermaid(nodes []domain.Node, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	endUsed := false
	for _, node := range nodes {
		safeID := sanitizeMermaidID(string(node.ID))

		opener, closer := "[", "]"
		switch {
		case node.ID == domain.Start:
			opener, closer = "((", "))"
		case node.Kind == domain.StepKindInput:
			opener, closer = "[/", "/]"
		case node.Kind == domain.StepKindLogic:
			opener, closer = "[[", "]]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label(node.ID), closer)

		for _, to := range node.Targets {
			if to == domain.End {
				endUsed = true
			}
			safeTo := sanitizeMermaidID(string(to))
			arrow := "-->"
			if node.Edge == domain.EdgeConditional {
				arrow = ".->"
				if node.Selector != "" {
					arrow = fmt.Sprintf("-. \"%s\" .->", strings.ReplaceAll(node.Selector, "\"", "'"))
				}
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, safeTo)
		}
	}
	if endUsed {
		fmt.Fprintf(&sb, "    %s((\"%s\"))\n", sanitizeMermaidID(string(domain.End)), label(domain.End))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast on light fills, regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func label(id domain.StepID) string {
	switch id {
	case domain.Start:
		return "START"
	case domain.End:
		return "END"
	}
	return string(id)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
