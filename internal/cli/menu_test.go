package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/orderbot/internal/logging"
	"github.com/aretw0/orderbot/pkg/domain"
)

func TestNewMenuServer_ServesMenuAndMetrics(t *testing.T) {
	handler, err := NewMenuServer("", logging.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/menu")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []domain.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Equal(t, []string{"Margherita", "Salami", "Funghi", "Quattro Formaggi", "Tonno"}, domain.MenuNames(items))

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	body, err := io.ReadAll(metrics.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "orderbot_menu_request_duration_seconds")
}

func TestNewMenuServer_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n"), 0644))

	_, err := NewMenuServer(path, logging.NewNop())
	assert.Error(t, err)
}

func TestServeMenu_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	err := ServeMenu(ctx, MenuServeOptions{Port: "0", Stdout: &stdout, Stderr: io.Discard})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Menu server stopped gracefully")
}
