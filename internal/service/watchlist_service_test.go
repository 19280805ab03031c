package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arblack/trade-tracker/internal/api/request"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestWatchlistService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives total value and captures current holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWatchlistService(t, db)
		user := testutil.NewUser().Build(t, db)
		item := testutil.CreateItem(t, db, "Gold Bar")

		testutil.NewTransaction(user.ID, item.ID).
			WithPrice(1.0).WithQuantity(10).WithDate("2024-01-01").Build(t, db)
		testutil.NewTransaction(user.ID, item.ID).
			Sell().WithPrice(2.0).WithQuantity(4).WithDate("2024-01-02").Build(t, db)

		entry, err := svc.Create(ctx, user.ID, request.CreateWatchlistRequest{
			Name:           "Gold Bar",
			BuyOrSell:      model.TypeBuy,
			DesiredPrice:   1.5,
			WishedQuantity: 8,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if !almostEqual(entry.TotalValue, 12.0) {
			t.Errorf("Expected total value 12.0, got %v", entry.TotalValue)
		}
		if entry.CurrentHolding != 6 {
			t.Errorf("Expected current holding 6, got %v", entry.CurrentHolding)
		}
	})

	t.Run("unknown items are watchable with zero holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestWatchlistService(t, db)
		user := testutil.NewUser().Build(t, db)

		entry, err := svc.Create(ctx, user.ID, request.CreateWatchlistRequest{
			Name:           "Never Traded",
			BuyOrSell:      model.TypeSell,
			DesiredPrice:   100,
			WishedQuantity: 1,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if entry.CurrentHolding != 0 {
			t.Errorf("Expected zero holding, got %v", entry.CurrentHolding)
		}
	})
}

func TestWatchlistService_Delete(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestWatchlistService(t, db)
	owner := testutil.NewUser().Build(t, db)
	intruder := testutil.NewUser().Build(t, db)

	entry, err := svc.Create(ctx, owner.ID, request.CreateWatchlistRequest{
		Name: "Gold Bar", BuyOrSell: model.TypeBuy, DesiredPrice: 1, WishedQuantity: 1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, intruder.ID, entry.ID); !errors.Is(err, apperrors.ErrWatchlistEntryNotFound) {
		t.Errorf("Expected ErrWatchlistEntryNotFound for foreign delete, got %v", err)
	}

	if err := svc.Delete(ctx, owner.ID, entry.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	testutil.AssertRowCount(t, db, "watchlist", 0)
}
