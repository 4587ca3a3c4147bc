package runtime

import (
	"fmt"

	"github.com/aretw0/orderbot/pkg/domain"
)

// validateGraph checks the table for dangling steps and broken links.
// Problems are fatal; warnings (unreachable steps) are not.
func validateGraph(entry EntrySpec, specs []StepSpec) (problems, warnings []string) {
	known := make(map[domain.StepID]bool, len(specs))

	if entry.Selector == nil {
		problems = append(problems, "START has no outgoing edge")
	}

	for _, s := range specs {
		switch {
		case s.ID == "":
			problems = append(problems, "step with empty id")
			continue
		case s.ID.IsSentinel():
			problems = append(problems, fmt.Sprintf("step id %q is reserved", s.ID))
			continue
		case known[s.ID]:
			problems = append(problems, fmt.Sprintf("duplicate step %q", s.ID))
			continue
		}
		known[s.ID] = true
	}

	checkTarget := func(from domain.StepID, to domain.StepID) {
		if to == domain.End {
			return
		}
		if to == domain.Start {
			problems = append(problems, fmt.Sprintf("step %q routes back to START", from))
			return
		}
		if !known[to] {
			problems = append(problems, fmt.Sprintf("step %q targets unknown step %q", from, to))
		}
	}

	for _, b := range entry.Branches {
		checkTarget(domain.Start, b)
	}

	for _, s := range specs {
		if s.ID == "" || s.ID.IsSentinel() {
			continue
		}
		if s.Action == nil {
			problems = append(problems, fmt.Sprintf("step %q has no action", s.ID))
		}
		switch s.Edge {
		case domain.EdgeFixed:
			if s.Target == "" {
				problems = append(problems, fmt.Sprintf("step %q has no outgoing edge", s.ID))
				continue
			}
			checkTarget(s.ID, s.Target)
		case domain.EdgeConditional:
			if s.Selector == nil {
				problems = append(problems, fmt.Sprintf("step %q has no outgoing edge", s.ID))
				continue
			}
			for _, b := range s.Branches {
				checkTarget(s.ID, b)
			}
		default:
			problems = append(problems, fmt.Sprintf("step %q has no outgoing edge", s.ID))
		}
	}

	if len(problems) > 0 {
		return problems, nil
	}
	return nil, unreachable(entry, specs)
}

// unreachable crawls declared edges from START and reports steps never visited.
// A conditional edge without declared branches makes every step potentially
// reachable, so the crawl gives up in that case.
func unreachable(entry EntrySpec, specs []StepSpec) []string {
	byID := make(map[domain.StepID]StepSpec, len(specs))
	for _, s := range specs {
		byID[s.ID] = s
	}

	if entry.Selector != nil && len(entry.Branches) == 0 {
		return nil
	}

	visited := make(map[domain.StepID]bool)
	queue := append([]domain.StepID(nil), entry.Branches...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == domain.End || visited[current] {
			continue
		}
		visited[current] = true

		s := byID[current]
		switch s.Edge {
		case domain.EdgeFixed:
			queue = append(queue, s.Target)
		case domain.EdgeConditional:
			if len(s.Branches) == 0 {
				return nil
			}
			queue = append(queue, s.Branches...)
		}
	}

	var warnings []string
	for _, s := range specs {
		if !visited[s.ID] {
			warnings = append(warnings, fmt.Sprintf("step %q is unreachable from START", s.ID))
		}
	}
	return warnings
}
