package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaincheck/internal/catalog"
	"chaincheck/internal/checklist"
	"chaincheck/internal/checklist/handler"
	"chaincheck/internal/checklist/store"
	"chaincheck/internal/platform/metrics"
	"chaincheck/internal/threat"
	"chaincheck/pkg/testutil"
)

func fixtureCatalog() *catalog.Catalog {
	return catalog.New([]catalog.SecurityCategory{
		{ID: "wallet", Title: "Wallet", Items: []catalog.SecurityItem{
			{ID: "wallet-1", Title: "Hardware wallet", Level: catalog.LevelEssential},
			{ID: "wallet-2", Title: "Seed backup", Level: catalog.LevelEssential},
			{ID: "wallet-3", Title: "Passphrase", Level: catalog.LevelEssential},
			{ID: "wallet-4", Title: "Test recovery", Level: catalog.LevelEssential},
		}},
		{ID: "defi", Title: "DeFi", Items: []catalog.SecurityItem{
			{ID: "defi-1", Title: "Revoke approvals", Level: catalog.LevelEssential},
			{ID: "defi-2", Title: "Simulate transactions", Level: catalog.LevelRecommended},
			{ID: "defi-3", Title: "Dedicated hot wallet", Level: catalog.LevelOptional},
		}},
	})
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewForTest()
	filter := threat.NewFilterWithMappings(logger, m, map[string]threat.Mapping{
		"wallet": {threat.LevelBasic: {"wallet-1", "wallet-2", "wallet-4"}},
		"defi":   {threat.LevelBasic: {"defi-1"}},
	})
	svc := checklist.NewService(context.Background(), logger, m, fixtureCatalog(), filter, store.NewInMemoryStore(), 0)
	t.Cleanup(svc.Close)

	r := chi.NewRouter()
	r.Route("/api/v1", func(api chi.Router) {
		handler.New(svc, logger).Register(api)
	})
	return r
}

func TestListCategories(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/categories", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, "all", body["threatLevel"])
	assert.Equal(t, float64(0), body["version"])
	assert.Len(t, body["categories"], 2)

	t.Run("explicit threat level filters items", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/categories?threat_level=basic", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		body := testutil.DecodeJSON(t, rr)
		cats := body["categories"].([]any)
		wallet := cats[0].(map[string]any)
		assert.Len(t, wallet["items"], 3)
	})

	t.Run("invalid threat level is a client error", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/categories?threat_level=paranoid", nil))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "bad_request")
	})
}

func TestGetCategory(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/categories/wallet", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, float64(0), body["score"])
	cat := body["category"].(map[string]any)
	assert.Equal(t, "wallet", cat["id"])

	rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/categories/nonexistent", nil))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	testutil.AssertErrorCode(t, rr, "not_found")
}

func TestToggleItem(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/items/wallet-1/toggle",
		map[string]string{"categoryId": "wallet"}))
	testutil.AssertStatus(t, rr, http.StatusOK)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, "wallet-1", body["id"])
	assert.Equal(t, true, body["completed"])
	assert.Equal(t, float64(1), body["version"])

	t.Run("second toggle flips back", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/items/wallet-1/toggle", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, false, testutil.DecodeJSON(t, rr)["completed"])
	})

	t.Run("unknown item", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/items/wallet-99/toggle", nil))
		testutil.AssertStatus(t, rr, http.StatusNotFound)
		testutil.AssertErrorCode(t, rr, "not_found")
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewRawRequest(t, http.MethodPost, "/api/v1/items/wallet-1/toggle", `{broken`))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("chunked body is decoded", func(t *testing.T) {
		// Wrapping the reader hides its concrete type, so the request
		// carries ContentLength -1 like a chunked upload.
		body := struct{ io.Reader }{strings.NewReader(`{"categoryId":"wallet"}`)}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/items/wallet-2/toggle", body)
		req.Header.Set("Content-Type", "application/json")

		rr := testutil.Do(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, true, testutil.DecodeJSON(t, rr)["completed"])
	})
}

func TestThreatLevelEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/threat-level", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, "all", body["level"])
	assert.Equal(t, false, body["transitioning"])

	rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPut, "/api/v1/threat-level",
		map[string]string{"level": "basic"}))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, "basic", testutil.DecodeJSON(t, rr)["level"])

	rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/threat-level", nil))
	assert.Equal(t, "basic", testutil.DecodeJSON(t, rr)["level"])

	t.Run("invalid level", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPut, "/api/v1/threat-level",
			map[string]string{"level": "paranoid"}))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "bad_request")
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewRawRequest(t, http.MethodPut, "/api/v1/threat-level", `not json`))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestListProfiles(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/threat-profiles", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	profiles := testutil.DecodeJSON(t, rr)["profiles"].([]any)
	require.Len(t, profiles, 6)
	first := profiles[0].(map[string]any)
	assert.Equal(t, "all", first["id"])
	assert.NotEmpty(t, first["name"])
}

func TestScoreEndpoint(t *testing.T) {
	router := newTestRouter(t)

	testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/items/wallet-1/toggle", nil))

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/score?threat_level=basic", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, "basic", body["threatLevel"])
	assert.Equal(t, float64(25), body["overall"], "1 of 4 basic-relevant items")
	categories := body["categories"].(map[string]any)
	assert.Equal(t, float64(33), categories["wallet"])
	assert.Equal(t, float64(0), categories["defi"])
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/stats", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	body := testutil.DecodeJSON(t, rr)
	assert.Equal(t, float64(7), body["total"], "everything is relevant under the default level")
	assert.Equal(t, float64(0), body["completed"])
}

func TestPresetEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("preview", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/presets/preview?levels=essential", nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Equal(t, float64(5), testutil.DecodeJSON(t, rr)["count"])
	})

	t.Run("preview requires levels", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/presets/preview", nil))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "bad_request")
	})

	t.Run("preview rejects unknown levels", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/presets/preview?levels=essential,severe", nil))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("apply merge then reset", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/presets/apply",
			map[string]any{"levels": []string{"essential"}, "mode": "merge"}))
		testutil.AssertStatus(t, rr, http.StatusOK)

		rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/score", nil))
		assert.Equal(t, float64(71), testutil.DecodeJSON(t, rr)["overall"], "5 of 7 items after the essential merge")

		rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/presets/apply",
			map[string]any{"mode": "reset"}))
		testutil.AssertStatus(t, rr, http.StatusOK)

		rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/score", nil))
		assert.Equal(t, float64(0), testutil.DecodeJSON(t, rr)["overall"])
	})

	t.Run("apply rejects unknown mode", func(t *testing.T) {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/presets/apply",
			map[string]any{"levels": []string{"essential"}, "mode": "upsert"}))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestHistoryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/items/wallet-1/toggle", nil))

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/history", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	entries := testutil.DecodeJSON(t, rr)["entries"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, float64(14), entry["score"], "1 of 7")
}

func TestVersionEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/version", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, float64(0), testutil.DecodeJSON(t, rr)["version"])

	testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/items/wallet-1/toggle", nil))

	rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/v1/version", nil))
	assert.Equal(t, float64(1), testutil.DecodeJSON(t, rr)["version"])
}
