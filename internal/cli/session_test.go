package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/orderbot/internal/config"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/runner"
)

func offlineOptions(input string) (RunOptions, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return RunOptions{
		Config:  config.Default(),
		Offline: true,
		Stdin:   strings.NewReader(input),
		Stdout:  &stdout,
		Stderr:  &stderr,
	}, &stdout, &stderr
}

func TestRunSession_OfflineEndToEnd(t *testing.T) {
	opts, stdout, _ := offlineOptions("Alice\nPineapple\nSalami\n")

	err := Execute(context.Background(), opts)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "ChatBot: What's your name?")
	assert.Contains(t, out, "Received: Alice")
	assert.Contains(t, out, "Pizza 'Pineapple' is invalid")
	assert.Contains(t, out, "Final: ")
	assert.Contains(t, out, `"user_name": "Alice"`)
	assert.Contains(t, out, `"current_item_name": "Salami"`)
	assert.Contains(t, out, `"Hello, Alice!"`)
	assert.NotContains(t, out, ">>>", "banner is only printed on a terminal")
}

func TestRunSession_PresetName(t *testing.T) {
	opts, stdout, _ := offlineOptions("Funghi\n")
	opts.Name = "Bob"

	require.NoError(t, RunSession(context.Background(), opts))
	assert.NotContains(t, stdout.String(), "What's your name?")
	assert.Contains(t, stdout.String(), `"Hello, Bob!"`)
}

func TestRunSession_JSONMode(t *testing.T) {
	opts, stdout, _ := offlineOptions("\"Alice\"\nMargherita\n")
	opts.Config.JSON = true

	require.NoError(t, RunSession(context.Background(), opts))

	var events []runner.Event
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		var e runner.Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e), scanner.Text())
		events = append(events, e)
	}
	require.NotEmpty(t, events)

	assert.Equal(t, runner.EventPrompt, events[0].Type)
	last := events[len(events)-1]
	require.Equal(t, runner.EventFinal, last.Type)
	require.NotNil(t, last.State)
	assert.Equal(t, []string{"Hello, Alice!"}, last.State.Output)
}

func TestRunSession_JSONModeReportsFailure(t *testing.T) {
	opts, stdout, _ := offlineOptions("")
	opts.Config.JSON = true

	err := RunSession(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, ExitInputUnavailable, ExitCode(err))
	assert.Contains(t, stdout.String(), `"type":"error"`)
}

func TestRunSession_InputClosed(t *testing.T) {
	opts, _, _ := offlineOptions("Alice\n")

	err := RunSession(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputUnavailable)
	assert.Equal(t, ExitInputUnavailable, ExitCode(err))
}

func TestRunSession_Interrupted(t *testing.T) {
	opts, stdout, _ := offlineOptions("Alice\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunSession(ctx, opts)
	require.Error(t, err)
	assert.Equal(t, ExitInputUnavailable, ExitCode(err))
	assert.Contains(t, stdout.String(), ">>> Interrupted at '__start__' step.")
}

func TestRunSession_MenuFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n  name: Calzone\n"), 0644))

	opts, stdout, _ := offlineOptions("Alice\nSalami\nCalzone\n")
	opts.Offline = false
	opts.Config.Menu.File = path

	require.NoError(t, RunSession(context.Background(), opts))
	assert.Contains(t, stdout.String(), "Pizza 'Salami' is invalid. Try any of: 'Calzone'")
	assert.Contains(t, stdout.String(), `"current_item_name": "Calzone"`)
}

func TestRunSession_ValidationServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	opts, stdout, _ := offlineOptions("Alice\nMargherita\n")
	opts.Offline = false
	opts.Config.Menu.URL = srv.URL

	err := RunSession(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, ExitValidationService, ExitCode(err))
	assert.NotContains(t, stdout.String(), "Final:")
}

func TestRunSession_TooManyAttempts(t *testing.T) {
	opts, _, _ := offlineOptions("Alice\nPineapple\n")
	opts.Config.MaxAttempts = 1

	err := RunSession(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, ExitTooManyAttempts, ExitCode(err))
}

func TestRunSession_OrderFlow(t *testing.T) {
	opts, stdout, _ := offlineOptions("Alice\nSalami\n2\nyes\nTonno\n1\nno\n")
	opts.Config.Flow = "order"

	require.NoError(t, RunSession(context.Background(), opts))
	assert.Contains(t, stdout.String(), "Order for Alice: 2x Salami, 1x Tonno")
}

func TestRunSession_ServesMetrics(t *testing.T) {
	opts, _, stderr := offlineOptions("Alice\nSalami\n")
	opts.Config.MetricsAddr = "127.0.0.1:0"

	require.NoError(t, RunSession(context.Background(), opts))
	assert.Contains(t, stderr.String(), "Metrics server listening")
}

func TestRunSession_DebugLogsSteps(t *testing.T) {
	opts, _, stderr := offlineOptions("Alice\nSalami\n")
	opts.Debug = true

	require.NoError(t, RunSession(context.Background(), opts))
	assert.Contains(t, stderr.String(), "Enter Step")
	assert.Contains(t, stderr.String(), "step_id=ask_item_name")
}

func TestExecute_RejectsBadOptions(t *testing.T) {
	opts, _, _ := offlineOptions("")
	opts.Config.Flow = "sushi"
	assert.Error(t, Execute(context.Background(), opts))

	opts.Config.Flow = "pizza"
	opts.Config.MaxAttempts = -1
	assert.Error(t, Execute(context.Background(), opts))

	opts.Config.MaxAttempts = 0
	opts.Config.LogLevel = "loud"
	assert.Error(t, Execute(context.Background(), opts))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Nil", nil, ExitOK},
		{"Graph Config", &domain.GraphConfigError{Problems: []string{"x"}}, ExitGraphConfig},
		{"Input Unavailable", fmt.Errorf("step a: %w", domain.ErrInputUnavailable), ExitInputUnavailable},
		{"Validation Service", &domain.ValidationServiceError{URL: "http://menu", StatusCode: 500}, ExitValidationService},
		{"Too Many Attempts", fmt.Errorf("%w: pizza", domain.ErrTooManyAttempts), ExitTooManyAttempts},
		{"Other", errors.New("boom"), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
