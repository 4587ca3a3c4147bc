package dsl

import "github.com/aretw0/orderbot/internal/runtime"

// Action is the work a step performs; it may prompt through the IOHandler
// and mutates the state in place.
type Action = runtime.Action

// Selector decides the next target of a conditional edge from the state.
type Selector = runtime.Selector

// Graph is a compiled, immutable dialog graph, ready to run with
// orderbot.WithGraph.
type Graph = runtime.Graph
