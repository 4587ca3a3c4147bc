/*
Package orderbot is a turn-based dialog controller for taking food orders.

A dialog is a directed graph of steps. Each step reads and updates a shared
order state, and its outgoing edge either names the next step or asks a
selector to decide from the state. Input steps prompt the user through an
injected IOHandler; validation steps check answers against an external menu
service and loop back to the question until the answer is accepted.

# Flows

Two flows are built in:

  - pizza: ask the user name (unless already known), greet, ask for a pizza
    and validate it against the menu.
  - order: like pizza, then ask a quantity per item and keep adding items
    until the user answers "no". The order keeps items in insertion order.

# Usage

	eng, err := orderbot.New(
		orderbot.WithFlow(orderbot.FlowPizza),
		orderbot.WithMenu(memory.DefaultMenu()),
	)
	if err != nil {
		log.Fatal(err)
	}

	final, err := eng.Run(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(final.Output)

Graph problems (a step without an outgoing edge, a link to an unknown step)
are reported by New as a *domain.GraphConfigError, before any step runs.
Run fails with domain.ErrInputUnavailable when the console closes or the
context is cancelled, and with domain.ErrValidationServiceUnavailable when
the menu cannot be fetched.
*/
package orderbot
