package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestItemService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("short name wins over item name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestItemService(t, db)

		gold := testutil.CreateItem(t, db, "Gold Bar")
		// an item literally named "gb" must lose to the alias
		testutil.CreateItem(t, db, "gb")
		testutil.CreateAlias(t, db, "Gold Bar", "gb")

		item, err := svc.Resolve(ctx, "gb")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if item.ID != gold.ID {
			t.Errorf("Expected alias to win: got item %q", item.Name)
		}
	})

	t.Run("resolves case-insensitively", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestItemService(t, db)

		gold := testutil.CreateItem(t, db, "Gold Bar")
		testutil.CreateAlias(t, db, "Gold Bar", "gb")

		for _, name := range []string{"GB", "gold bar", "GOLD BAR"} {
			item, err := svc.Resolve(ctx, name)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", name, err)
			}
			if item.ID != gold.ID {
				t.Errorf("Resolve(%q): expected %s, got %s", name, gold.ID, item.ID)
			}
		}
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestItemService(t, db)

		_, err := svc.Resolve(ctx, "nothing here")
		if !errors.Is(err, apperrors.ErrItemNotFound) {
			t.Errorf("Expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemService_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing items once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestItemService(t, db)

		first, err := svc.ResolveOrCreate(ctx, "Gold Bar")
		if err != nil {
			t.Fatalf("ResolveOrCreate failed: %v", err)
		}
		second, err := svc.ResolveOrCreate(ctx, "Gold Bar")
		if err != nil {
			t.Fatalf("ResolveOrCreate failed: %v", err)
		}

		if first.ID != second.ID {
			t.Errorf("Expected same item, got %s and %s", first.ID, second.ID)
		}
		testutil.AssertRowCount(t, db, "item", 1)
	})

	t.Run("alias creates the item under its full name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestItemService(t, db)

		testutil.CreateAlias(t, db, "Gold Bar", "gb")

		item, err := svc.ResolveOrCreate(ctx, "gb")
		if err != nil {
			t.Fatalf("ResolveOrCreate failed: %v", err)
		}
		if item.Name != "Gold Bar" {
			t.Errorf("Expected item created as %q, got %q", "Gold Bar", item.Name)
		}
	})
}

func TestItemService_PriceLevels(t *testing.T) {
	ctx := context.Background()

	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestItemService(t, db)

	price, err := svc.SetAccumulationPrice(ctx, "Gold Bar", 10.5)
	if err != nil {
		t.Fatalf("SetAccumulationPrice failed: %v", err)
	}
	if price.Price != 10.5 {
		t.Errorf("Expected price 10.5, got %v", price.Price)
	}

	// upsert replaces the previous level
	price, err = svc.SetAccumulationPrice(ctx, "Gold Bar", 12.0)
	if err != nil {
		t.Fatalf("SetAccumulationPrice failed: %v", err)
	}
	if price.Price != 12.0 {
		t.Errorf("Expected price 12.0 after upsert, got %v", price.Price)
	}
	testutil.AssertRowCount(t, db, "accumulation_price", 1)

	target, err := svc.SetTargetSellPrice(ctx, "Gold Bar", 20.0)
	if err != nil {
		t.Fatalf("SetTargetSellPrice failed: %v", err)
	}
	if target.Price != 20.0 {
		t.Errorf("Expected target 20.0, got %v", target.Price)
	}
}
