package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/repository"
	"github.com/arblack/trade-tracker/internal/testutil"
)

func TestImportService_ImportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("imports rows and recomputes once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)
		user := testutil.NewUser().Build(t, db)

		csv := strings.Join([]string{
			"item,type,price,quantity,date_of_holding",
			"Gold Bar,Buy,1.0,10,2024-01-01",
			"Gold Bar,Sell,2.0,5,2024-01-02",
			"Silver Coin,Buy,3.0,2,2024-01-03",
		}, "\n")

		imported, err := svc.ImportCSV(ctx, user.ID, strings.NewReader(csv))
		if err != nil {
			t.Fatalf("ImportCSV failed: %v", err)
		}
		if imported != 3 {
			t.Errorf("Expected 3 imported rows, got %d", imported)
		}

		testutil.AssertRowCount(t, db, "transaction", 3)
		testutil.AssertRowCount(t, db, "item", 2)

		// profit was filled in by the post-import recompute
		repo := repository.NewTransactionRepository(db)
		transactions, err := repo.GetByUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetByUser failed: %v", err)
		}
		if !almostEqual(transactions[1].RealisedProfit, 4.8) {
			t.Errorf("Expected realised profit 4.8 on sell row, got %v", transactions[1].RealisedProfit)
		}
	})

	t.Run("accepts headers in any order and case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)
		user := testutil.NewUser().Build(t, db)

		csv := strings.Join([]string{
			"Date_Of_Holding,Quantity,PRICE,Type,Item",
			"2024-02-01,3,7.5,Buy,Gold Bar",
		}, "\n")

		imported, err := svc.ImportCSV(ctx, user.ID, strings.NewReader(csv))
		if err != nil {
			t.Fatalf("ImportCSV failed: %v", err)
		}
		if imported != 1 {
			t.Errorf("Expected 1 imported row, got %d", imported)
		}
	})

	t.Run("rejects missing headers", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)
		user := testutil.NewUser().Build(t, db)

		csv := "item,type,price\nGold Bar,Buy,1.0"

		_, err := svc.ImportCSV(ctx, user.ID, strings.NewReader(csv))
		if !errors.Is(err, apperrors.ErrInvalidCSVHeaders) {
			t.Errorf("Expected ErrInvalidCSVHeaders, got %v", err)
		}
		testutil.AssertRowCount(t, db, "transaction", 0)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)
		user := testutil.NewUser().Build(t, db)

		_, err := svc.ImportCSV(ctx, user.ID, strings.NewReader(""))
		if !errors.Is(err, apperrors.ErrInvalidCSVHeaders) {
			t.Errorf("Expected ErrInvalidCSVHeaders, got %v", err)
		}
	})

	t.Run("stops on malformed rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)
		user := testutil.NewUser().Build(t, db)

		csv := strings.Join([]string{
			"item,type,price,quantity,date_of_holding",
			"Gold Bar,Buy,1.0,10,2024-01-01",
			"Gold Bar,Hold,2.0,5,2024-01-02",
		}, "\n")

		imported, err := svc.ImportCSV(ctx, user.ID, strings.NewReader(csv))
		if err == nil {
			t.Fatal("Expected error for invalid transaction type")
		}
		if imported != 1 {
			t.Errorf("Expected 1 row imported before the failure, got %d", imported)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestImportService(t, db)
		user := testutil.NewUser().Build(t, db)

		csv := strings.Join([]string{
			"item,type,price,quantity,date_of_holding",
			"Gold Bar,Buy,-1.0,10,2024-01-01",
		}, "\n")

		_, err := svc.ImportCSV(ctx, user.ID, strings.NewReader(csv))
		if !errors.Is(err, apperrors.ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})
}
