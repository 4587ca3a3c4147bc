/*
Package runner implements the I/O handlers that connect the dialog engine to a
user.

The engine only talks to the outside world through ports.IOHandler. This package
provides the two standard implementations:

  - TextHandler: interactive console use. Prompts end with "> ", log lines go
    to a separate writer, input is sanitized before it reaches the engine.
  - JSONHandler: headless automation over NDJSON. Every prompt and log line is
    one JSON object on stdout; answers are read one per line from stdin.

Both read input in a pump goroutine so a pending prompt returns as soon as its
context is cancelled.

# Usage

	handler := runner.NewTextHandler(os.Stdin, os.Stdout)
	engine, err := runtime.NewEngine(graph, handler)
*/
package runner
