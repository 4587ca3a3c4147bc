package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/orderbot/internal/flow"
	"github.com/aretw0/orderbot/internal/runtime"
	"github.com/aretw0/orderbot/internal/testutils"
	"github.com/aretw0/orderbot/pkg/domain"
	"github.com/aretw0/orderbot/pkg/observability"
)

func TestMetrics_FromRun(t *testing.T) {
	m := observability.NewMetrics(nil)
	hooks := m.Hooks()

	menu := testutils.NewStaticMenu("Margherita")
	graph, err := flow.Build(flow.VariantPizza, flow.Deps{
		Menu:  m.InstrumentMenu(menu),
		Hooks: hooks,
	})
	require.NoError(t, err)

	engine, err := runtime.NewEngine(graph, testutils.NewScriptedIO("Alice", "Hawaii", "Margherita"),
		runtime.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	_, err = engine.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StepVisits.WithLabelValues("ask_item_name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StepVisits.WithLabelValues("greeting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("current_item_name", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("current_item_name", "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.MenuRequests))
}

func TestMetrics_InstrumentMenuRecordsErrors(t *testing.T) {
	m := observability.NewMetrics(nil)
	menu := testutils.NewStaticMenu()
	menu.Err = errors.New("boom")

	_, err := m.InstrumentMenu(menu).ListItems(context.Background())
	assert.Error(t, err)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `orderbot_menu_request_duration_seconds_count{outcome="error"} 1`)
}

func TestDebugHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	hooks := observability.DebugHooks(logger)

	hooks.OnStepEnter(context.Background(), &domain.StepEvent{StepID: "greeting"})
	hooks.OnValidation(context.Background(), &domain.ValidationEvent{Field: domain.FieldItemName, Value: "Hawaii", Attempt: 1})

	out := buf.String()
	assert.Contains(t, out, "Enter Step")
	assert.Contains(t, out, "step_id=greeting")
	assert.Contains(t, out, "Validation (Rejected)")
	assert.Contains(t, out, "value=Hawaii")
}
