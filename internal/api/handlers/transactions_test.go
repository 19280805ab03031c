package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arblack/trade-tracker/internal/api/handlers"
	"github.com/arblack/trade-tracker/internal/api/middleware"
	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))
	user := testutil.NewUser().Build(t, db)

	t.Run("creates and returns recomputed transaction", func(t *testing.T) {
		buy := request.CreateTransactionRequest{
			ItemName: "Gold Bar", Type: model.TypeBuy,
			Price: 1.0, Quantity: 10, DateOfHolding: "2024-01-01",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", buy)
		req = req.WithContext(middleware.WithUser(req.Context(), user))
		rec := httptest.NewRecorder()

		handler.CreateTransaction(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var created model.Transaction
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if created.UserID != user.ID {
			t.Errorf("Expected owner %s, got %s", user.ID, created.UserID)
		}
		testutil.AssertRowCount(t, db, "transaction", 1)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		bad := request.CreateTransactionRequest{
			ItemName: "Gold Bar", Type: "Hold",
			Price: 1.0, Quantity: 1, DateOfHolding: "2024-01-01",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", bad)
		req = req.WithContext(middleware.WithUser(req.Context(), user))
		rec := httptest.NewRecorder()

		handler.CreateTransaction(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/transaction", map[string]any{
			"itemName": "Gold Bar", "type": "Buy", "price": 1.0,
			"quantity": 1, "dateOfHolding": "2024-01-01", "realisedProfit": 999.0,
		})
		req = req.WithContext(middleware.WithUser(req.Context(), user))
		rec := httptest.NewRecorder()

		handler.CreateTransaction(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for unknown field, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

	alice := testutil.NewUser().Build(t, db)
	bob := testutil.NewUser().Build(t, db)
	item := testutil.CreateItem(t, db, "Gold Bar")

	testutil.NewTransaction(alice.ID, item.ID).WithDate("2024-01-01").Build(t, db)
	testutil.NewTransaction(alice.ID, item.ID).WithDate("2024-01-02").Build(t, db)
	testutil.NewTransaction(bob.ID, item.ID).WithDate("2024-01-03").Build(t, db)

	t.Run("returns only own transactions newest first", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), alice))
		rec := httptest.NewRecorder()

		handler.ListTransactions(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		var list []model.TransactionResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(list))
		}
		if !list[0].DateOfHolding.After(list[1].DateOfHolding) {
			t.Errorf("Expected newest first: %v before %v", list[0].DateOfHolding, list[1].DateOfHolding)
		}
		if list[0].ItemName != "Gold Bar" {
			t.Errorf("Expected item name joined in, got %q", list[0].ItemName)
		}
	})

	t.Run("unknown item filter is a 404", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transaction", map[string]string{"item": "nope"})
		req = req.WithContext(middleware.WithUser(req.Context(), alice))
		rec := httptest.NewRecorder()

		handler.ListTransactions(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

	owner := testutil.NewUser().Build(t, db)
	intruder := testutil.NewUser().Build(t, db)
	item := testutil.NewItem().Build(t, db)
	tx := testutil.NewTransaction(owner.ID, item.ID).Build(t, db)

	t.Run("owner can read", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/"+tx.ID, map[string]string{"uuid": tx.ID})
		req = req.WithContext(middleware.WithUser(req.Context(), owner))
		rec := httptest.NewRecorder()

		handler.GetTransaction(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("foreign transaction is a 404", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/transaction/"+tx.ID, map[string]string{"uuid": tx.ID})
		req = req.WithContext(middleware.WithUser(req.Context(), intruder))
		rec := httptest.NewRecorder()

		handler.GetTransaction(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

	user := testutil.NewUser().Build(t, db)
	item := testutil.NewItem().Build(t, db)
	tx := testutil.NewTransaction(user.ID, item.ID).Build(t, db)

	req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/"+tx.ID, map[string]string{"uuid": tx.ID})
	req = req.WithContext(middleware.WithUser(req.Context(), user))
	rec := httptest.NewRecorder()

	handler.DeleteTransaction(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
	testutil.AssertRowCount(t, db, "transaction", 0)

	// a second delete is a 404
	rec = httptest.NewRecorder()
	req = testutil.NewRequestWithURLParams(http.MethodDelete, "/api/transaction/"+tx.ID, map[string]string{"uuid": tx.ID})
	req = req.WithContext(middleware.WithUser(req.Context(), user))

	handler.DeleteTransaction(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
