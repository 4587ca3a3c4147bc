package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/orderbot/internal/flow"
	"github.com/aretw0/orderbot/internal/presentation/graph"
	"github.com/aretw0/orderbot/internal/testutils"
	"github.com/aretw0/orderbot/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []domain.Node
		contains []string
	}{
		{
			name: "Start And End Shapes",
			nodes: []domain.Node{
				{ID: domain.Start, Edge: domain.EdgeConditional, Targets: []domain.StepID{"a"}},
				{ID: "a", Kind: domain.StepKindOutput, Edge: domain.EdgeFixed, Targets: []domain.StepID{domain.End}},
			},
			contains: []string{
				`__start__(("START"))`,
				`__end__(("END"))`,
				`a["a"]`,
				`a --> __end__`,
			},
		},
		{
			name: "Step Kind Shapes",
			nodes: []domain.Node{
				{ID: "ask", Kind: domain.StepKindInput},
				{ID: "add", Kind: domain.StepKindLogic},
			},
			contains: []string{
				`ask[/"ask"/]`,
				`add[["add"]]`,
			},
		},
		{
			name: "Conditional Edge Label",
			nodes: []domain.Node{
				{ID: "ask", Kind: domain.StepKindInput, Edge: domain.EdgeConditional, Selector: `Say "hi"`,
					Targets: []domain.StepID{"ask", "done"}},
			},
			contains: []string{
				`ask -. "Say 'hi'" .-> ask`,
				`ask -. "Say 'hi'" .-> done`,
			},
		},
		{
			name:     "ID Sanitization",
			nodes:    []domain.Node{{ID: "path/to-file.md"}},
			contains: []string{`path_to_file_md["path/to-file.md"]`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.nodes, nil)
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("missing header:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q\ngot:\n%s", want, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	g, err := flow.Build(flow.VariantPizza, flow.Deps{Menu: testutils.NewStaticMenu()})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	got := graph.GenerateMermaid(g.Nodes(), &graph.GraphOverlay{
		VisitedNodes: []string{"ask_user_name", "greeting", "ask_item_name", "ask_item_name"},
		CurrentNode:  "ask_item_name",
	})

	if strings.Count(got, "class ask_item_name visited;") != 1 {
		t.Errorf("visited nodes should be deduplicated:\n%s", got)
	}
	for _, want := range []string{
		`__start__ -. "RequireUserName" .-> ask_user_name`,
		`ask_item_name -. "ValidateItem" .-> __end__`,
		"class ask_item_name current;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
}
