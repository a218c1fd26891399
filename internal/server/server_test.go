package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teashop/internal/catalog"
	"teashop/internal/config"
	"teashop/internal/rng"
	"teashop/internal/sim"
	"teashop/internal/telemetry"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := sim.NewEngine(catalog.Default(), config.Default(), rng.New(1), logger)
	repo := telemetry.NewMemoryRepository()
	engine.Telemetry = repo
	return New(engine, NewSession(engine.NewGame()), repo, logger)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPostAction_MutatesSession(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/actions", `{"type":"select_brand","brand_id":"own_label"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp actionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)
	assert.Equal(t, "own_label", resp.State.BrandID)

	// The session itself moved, not just the response.
	assert.Equal(t, "own_label", s.session.State().BrandID)
}

func TestPostAction_PreconditionFailureIsNotAnHTTPError(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/actions", `{"type":"select_brand","brand_id":"no_such_brand"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp actionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
	assert.Empty(t, resp.State.BrandID)
}

func TestPostAction_BadRequests(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/actions", `{"type":"summon_dragon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/v1/actions", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/v1/actions", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReadEndpoints(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/v1/state", "/v1/stats", "/v1/result", "/v1/can-open", "/v1/health-alerts", "/v1/event", "/v1/telemetry"} {
		rec := do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json", path)
	}
}

func TestCanOpenEndpoint_ReflectsSetupProgress(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/can-open", "")
	var before sim.CanOpenResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &before))
	assert.False(t, before.CanOpen)
	assert.NotEmpty(t, before.Reasons)

	for _, body := range []string{
		`{"type":"select_brand","brand_id":"own_label"}`,
		`{"type":"select_location","location_id":"school_street"}`,
		`{"type":"select_address","address_id":"campus_gate"}`,
		`{"type":"set_store_area","area":40}`,
		`{"type":"select_decoration","decoration_id":"bare"}`,
		`{"type":"toggle_product","product_id":"classic_milk_tea"}`,
	} {
		rec := do(t, s, http.MethodPost, "/v1/actions", body)
		require.Equal(t, http.StatusOK, rec.Code, body)
	}

	rec = do(t, s, http.MethodGet, "/v1/can-open", "")
	var after sim.CanOpenResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.True(t, after.CanOpen, "reasons: %v", after.Reasons)
}

func TestTelemetryEndpoint_RecordsDispatches(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodPost, "/v1/actions", `{"type":"select_brand","brand_id":"own_label"}`)

	rec := do(t, s, http.MethodGet, "/v1/telemetry", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Events []telemetry.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Events)
	assert.Equal(t, telemetry.EventActionDispatched, resp.Events[0].Type)

	rec = do(t, s, http.MethodGet, "/v1/telemetry?since=banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
