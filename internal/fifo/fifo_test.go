package fifo

import (
	"math"
	"testing"
	"time"

	"github.com/arblack/trade-tracker/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tx(id, itemID, typ string, price, qty float64, day string) model.Transaction {
	return model.Transaction{
		ID:            id,
		UserID:        "user-1",
		ItemID:        itemID,
		Type:          typ,
		Price:         price,
		Quantity:      qty,
		DateOfHolding: date(day),
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRecalculate_FIFOConsumption(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
		tx("b", "item-x", model.TypeBuy, 20, 5, "2024-01-02"),
		tx("c", "item-x", model.TypeSell, 15, 5, "2024-01-03"),
	}

	Recalculate(txs)

	// The sell must consume the price-10 lot entirely: 15*5*0.98 - 10*5 = 23.5
	if !almostEqual(txs[2].RealisedProfit, 23.5) {
		t.Errorf("Expected realised profit 23.5, got %v", txs[2].RealisedProfit)
	}
	if !almostEqual(txs[2].CumulativeProfit, 23.5) {
		t.Errorf("Expected cumulative profit 23.5, got %v", txs[2].CumulativeProfit)
	}
}

func TestRecalculate_PartialLotAndOversell(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
		tx("b", "item-x", model.TypeBuy, 20, 5, "2024-01-02"),
		tx("c", "item-x", model.TypeSell, 15, 5, "2024-01-03"),
		// Only 5 units remain (the price-20 lot); selling 7 matches 5 and the
		// excess 2 contributes nothing: 25*5*0.98 - 20*5 = 22.5
		tx("d", "item-x", model.TypeSell, 25, 7, "2024-01-04"),
	}

	Recalculate(txs)

	if !almostEqual(txs[3].RealisedProfit, 22.5) {
		t.Errorf("Expected realised profit 22.5, got %v", txs[3].RealisedProfit)
	}
	if !almostEqual(txs[3].CumulativeProfit, 46.0) {
		t.Errorf("Expected cumulative profit 46.0, got %v", txs[3].CumulativeProfit)
	}
}

func TestRecalculate_BuysNeverRealiseProfit(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
		tx("b", "item-x", model.TypeSell, 15, 2, "2024-01-02"),
		tx("c", "item-x", model.TypeBuy, 12, 3, "2024-01-03"),
	}

	Recalculate(txs)

	for _, txn := range txs {
		if txn.Type == model.TypeBuy && txn.RealisedProfit != 0 {
			t.Errorf("Buy %s realised profit %v, want 0", txn.ID, txn.RealisedProfit)
		}
	}
}

func TestRecalculate_SameDayBuyBeforeSell(t *testing.T) {
	// The sell is inserted with a lexically smaller ID than the buy, yet the
	// same-day buy must still be processed first.
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeSell, 15, 5, "2024-01-01"),
		tx("b", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
	}

	Recalculate(txs)

	var sell model.Transaction
	for _, txn := range txs {
		if txn.Type == model.TypeSell {
			sell = txn
		}
	}
	if !almostEqual(sell.RealisedProfit, 23.5) {
		t.Errorf("Expected same-day round trip profit 23.5, got %v", sell.RealisedProfit)
	}
}

func TestRecalculate_SameDaySameTypeOrderedByID(t *testing.T) {
	txs := []model.Transaction{
		tx("b", "item-x", model.TypeBuy, 20, 1, "2024-01-01"),
		tx("a", "item-x", model.TypeBuy, 10, 1, "2024-01-01"),
		tx("c", "item-x", model.TypeSell, 30, 1, "2024-01-02"),
	}

	Recalculate(txs)

	// Lot "a" (price 10) is older in engine order despite insertion order.
	if !almostEqual(txs[2].RealisedProfit, 30*0.98-10) {
		t.Errorf("Expected profit %v, got %v", 30*0.98-10, txs[2].RealisedProfit)
	}
}

func TestRecalculate_CumulativeSumInvariant(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
		tx("b", "item-y", model.TypeBuy, 3, 10, "2024-01-01"),
		tx("c", "item-x", model.TypeSell, 15, 3, "2024-01-02"),
		tx("d", "item-y", model.TypeSell, 5, 4, "2024-01-03"),
		tx("e", "item-x", model.TypeSell, 8, 2, "2024-01-04"),
	}

	Recalculate(txs)

	var running float64
	for i, txn := range txs {
		running += txn.RealisedProfit
		if !almostEqual(txn.CumulativeProfit, running) {
			t.Errorf("index %d: cumulative %v, want running sum %v", i, txn.CumulativeProfit, running)
		}
	}
}

func TestRecalculate_Deterministic(t *testing.T) {
	build := func() []model.Transaction {
		return []model.Transaction{
			tx("c", "item-x", model.TypeSell, 15, 5, "2024-01-03"),
			tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
			tx("b", "item-x", model.TypeBuy, 20, 5, "2024-01-02"),
		}
	}

	first := build()
	Recalculate(first)

	second := build()
	Recalculate(second)

	for i := range first {
		if first[i].ID != second[i].ID ||
			!almostEqual(first[i].RealisedProfit, second[i].RealisedProfit) ||
			!almostEqual(first[i].CumulativeProfit, second[i].CumulativeProfit) {
			t.Errorf("index %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
		tx("b", "item-x", model.TypeSell, 15, 5, "2024-01-02"),
	}

	Recalculate(txs)
	firstRealised := txs[1].RealisedProfit
	firstCumulative := txs[1].CumulativeProfit

	// Stale outputs from the first run must not leak into the second.
	Recalculate(txs)

	if !almostEqual(txs[1].RealisedProfit, firstRealised) {
		t.Errorf("Realised profit drifted: %v vs %v", txs[1].RealisedProfit, firstRealised)
	}
	if !almostEqual(txs[1].CumulativeProfit, firstCumulative) {
		t.Errorf("Cumulative profit drifted: %v vs %v", txs[1].CumulativeProfit, firstCumulative)
	}
}

func TestRecalculate_ItemsTrackedIndependently(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
		tx("b", "item-y", model.TypeBuy, 100, 5, "2024-01-01"),
		tx("c", "item-x", model.TypeSell, 15, 5, "2024-01-02"),
	}

	Recalculate(txs)

	// The sell of item-x must not touch item-y's lot.
	if !almostEqual(txs[2].RealisedProfit, 23.5) {
		t.Errorf("Expected profit 23.5 from item-x lot only, got %v", txs[2].RealisedProfit)
	}
}

func TestRecalculate_ZeroQuantitySell(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "item-x", model.TypeBuy, 10, 5, "2024-01-01"),
		tx("b", "item-x", model.TypeSell, 15, 0, "2024-01-02"),
	}

	Recalculate(txs)

	if txs[1].RealisedProfit != 0 {
		t.Errorf("Zero-quantity sell realised %v, want 0", txs[1].RealisedProfit)
	}
}

func TestRecalculate_Empty(t *testing.T) {
	Recalculate(nil)
	Recalculate([]model.Transaction{})
}
