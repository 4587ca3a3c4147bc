package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/runner"
)

func decodeEvents(t *testing.T, raw string) []runner.Event {
	t.Helper()
	var events []runner.Event
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		var e runner.Event
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		events = append(events, e)
	}
	return events
}

func TestJSONHandler_PromptAcceptsJSONAndPlainText(t *testing.T) {
	out := &bytes.Buffer{}
	handler := runner.NewJSONHandler(strings.NewReader("\"Hello World\"\njust plain text\n"), out)

	val, err := handler.Prompt(context.Background(), "first")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", val)

	val, err = handler.Prompt(context.Background(), "second")
	require.NoError(t, err)
	assert.Equal(t, "just plain text", val)

	events := decodeEvents(t, out.String())
	require.Len(t, events, 2)
	assert.Equal(t, runner.Event{Type: runner.EventPrompt, Text: "first"}, events[0])
}

func TestJSONHandler_PromptEOF(t *testing.T) {
	handler := runner.NewJSONHandler(strings.NewReader(""), io.Discard)
	_, err := handler.Prompt(context.Background(), "anyone?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_LogFinalFail(t *testing.T) {
	out := &bytes.Buffer{}
	handler := runner.NewJSONHandler(strings.NewReader(""), out)

	state := domain.NewState("run-1")
	state.Append("Hello, Alice!")

	require.NoError(t, handler.Log(context.Background(), "Received: Alice"))
	require.NoError(t, handler.Final(state))
	require.NoError(t, handler.Fail(errors.New("boom")))

	events := decodeEvents(t, out.String())
	require.Len(t, events, 3)
	assert.Equal(t, runner.EventLog, events[0].Type)
	assert.Equal(t, "Received: Alice", events[0].Text)
	assert.Equal(t, runner.EventFinal, events[1].Type)
	require.NotNil(t, events[1].State)
	assert.Equal(t, []string{"Hello, Alice!"}, events[1].State.Output)
	assert.Equal(t, "boom", events[2].Error)
}

func TestJSONHandler_PromptRetriesRejectedInput(t *testing.T) {
	t.Setenv(runner.EnvMaxInputSize, "4")

	out := &bytes.Buffer{}
	handler := runner.NewJSONHandler(strings.NewReader("toolong\nok\n"), out)

	val, err := handler.Prompt(context.Background(), "name?")
	require.NoError(t, err)
	assert.Equal(t, "ok", val)

	events := decodeEvents(t, out.String())
	require.Len(t, events, 2)
	assert.Equal(t, runner.EventPrompt, events[0].Type)
	assert.Equal(t, runner.EventError, events[1].Type)
	assert.Contains(t, events[1].Error, "input exceeds maximum allowed size")
}
