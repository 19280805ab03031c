// Package fifo implements the profit recalculation for a single user's
// transaction history. Sells are matched against the oldest open purchase
// lots of the same item (first in, first out); realised profit is net of a
// fixed fee on sale proceeds, and a running cumulative total is carried
// across the whole history.
package fifo

import (
	"sort"

	"github.com/arblack/trade-tracker/internal/model"
)

// SellFeeRate is deducted from sale proceeds only; the cost basis of the
// consumed lots is not reduced.
const SellFeeRate = 0.02

// lot is an open purchase quantity awaiting matching sells.
type lot struct {
	remaining float64
	unitPrice float64
}

// Recalculate sorts txs into engine order and fills in RealisedProfit and
// CumulativeProfit in place. The order is total and deterministic:
// date of holding ascending, then type ascending (Buy before Sell), then ID
// ascending. It determines which lots exist before a same-day sell is
// processed, so a same-day round trip realises profit from that day's own
// buy.
//
// A sell exceeding the open quantity for its item is not an error: the
// matched portion realises profit as usual and the excess contributes
// nothing.
func Recalculate(txs []model.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		a, b := &txs[i], &txs[j]
		if !a.DateOfHolding.Equal(b.DateOfHolding) {
			return a.DateOfHolding.Before(b.DateOfHolding)
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.ID < b.ID
	})

	lots := make(map[string][]lot)
	var cumulative float64

	for i := range txs {
		tx := &txs[i]
		switch tx.Type {
		case model.TypeBuy:
			lots[tx.ItemID] = append(lots[tx.ItemID], lot{remaining: tx.Quantity, unitPrice: tx.Price})
			tx.RealisedProfit = 0
		default: // Sell
			queue := lots[tx.ItemID]
			toSell := tx.Quantity
			var profit float64
			for toSell > 0 && len(queue) > 0 {
				l := &queue[0]
				used := min(toSell, l.remaining)
				profit += tx.Price*used*(1-SellFeeRate) - l.unitPrice*used
				l.remaining -= used
				toSell -= used
				if l.remaining <= 0 {
					queue = queue[1:]
				}
			}
			lots[tx.ItemID] = queue
			tx.RealisedProfit = profit
		}
		cumulative += tx.RealisedProfit
		tx.CumulativeProfit = cumulative
	}
}
