package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestRequireUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	authService := testutil.NewTestAuthService(t, db)
	authenticator := middleware.NewAuthenticator(authService)

	var seenUser model.User
	handler := authenticator.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = middleware.UserFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	user, token, err := authService.Signup(context.Background(), request.SignupRequest{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	t.Run("valid token passes and stores the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if seenUser.ID != user.ID {
			t.Errorf("Expected user %s in context, got %s", user.ID, seenUser.ID)
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", rec.Code)
		}
	})

	t.Run("banned user is rejected", func(t *testing.T) {
		if _, err := authService.BanUser(context.Background(), user.ID, request.BanUserRequest{Permanent: true}); err != nil {
			t.Fatalf("BanUser failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", rec.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	authenticator := middleware.NewAuthenticator(testutil.NewTestAuthService(t, db))

	handler := authenticator.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), model.User{ID: testutil.MakeID(), IsAdmin: true}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), model.User{ID: testutil.MakeID()}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", rec.Code)
		}
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", rec.Code)
		}
	})
}
