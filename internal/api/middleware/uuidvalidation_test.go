package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestValidateUUIDMiddleware(t *testing.T) {
	handler := middleware.ValidateUUIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid UUID passes", func(t *testing.T) {
		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/"+id, map[string]string{"uuid": id})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("malformed UUID is rejected", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/nope", map[string]string{"uuid": "nope"})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing UUID is rejected", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})
}
