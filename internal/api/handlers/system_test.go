package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arblack/trade-tracker/internal/api/handlers"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

	t.Run("healthy database", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		var resp handlers.HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "healthy" || resp.Database != "connected" {
			t.Errorf("Expected healthy/connected, got %s/%s", resp.Status, resp.Database)
		}
	})

	t.Run("closed database is unhealthy", func(t *testing.T) {
		if err := db.Close(); err != nil {
			t.Fatalf("Failed to close database: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("Expected 503, got %d", rec.Code)
		}

		var resp handlers.HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "unhealthy" || resp.Error == "" {
			t.Errorf("Expected unhealthy with error detail, got %+v", resp)
		}
	})
}

func TestSystemHandler_Version(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewSystemHandler(testutil.NewTestSystemService(t, db))

	req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
	rec := httptest.NewRecorder()

	handler.Version(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp handlers.VersionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Version == "" {
		t.Error("Expected a non-empty version")
	}
}
