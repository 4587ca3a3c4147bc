/*
Package dsl provides a fluent Go builder for declaring dialog graphs.

A graph is a table of steps, each with an action and exactly one outgoing
edge. The builder records the table in registration order and hands it to the
runtime compiler, which rejects dangling steps and unknown targets before any
step can run.

Example usage:

	b := dsl.New("greeting")

	b.Entry("RequireUserName", requireUserName, "ask_user_name", "greeting")

	b.Add("ask_user_name").
		Ask("Collects the user name").
		Do(askUserName).
		Go("greeting")

	b.Add("greeting").
		Emit("Greets the user").
		Do(greet).
		Terminal()

	graph, err := b.Build()
*/
package dsl
