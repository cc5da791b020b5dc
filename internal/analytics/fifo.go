package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// buyLot is one open purchase waiting to be consumed by a later sell.
// Lots live only for the duration of a matching pass.
type buyLot struct {
	row      models.TradeRow
	quantity int64
}

// MatchResult is the output of one FIFO matching pass.
type MatchResult struct {
	Trades []models.MatchedTrade
	// UnmatchedSellQty is sell quantity that found no buy history at all
	// (e.g. holdings purchased before the exported period). Those units
	// are dropped from every matched-trade metric but never abort the
	// pass for other symbols.
	UnmatchedSellQty int64
}

// MatchTrades pairs buy and sell rows per symbol under FIFO rules and
// produces the matched-trade set every other statistic is derived from.
//
// Ordering: rows are processed in trade-date ascending order, execution
// time and then original row order breaking ties. Matching is per symbol;
// symbols never interact.
//
// For each sell row the oldest open buy lot is consumed first. A partial
// lot is pushed back to the front of the queue with its quantity reduced.
// Zero-quantity rows are skipped. A symbol with only buys contributes no
// matched trades.
//
// The only errors are precondition violations the normalization layer
// should have rejected: negative quantity or a non-finite price.
func MatchTrades(rows []models.TradeRow) (MatchResult, error) {
	var res MatchResult

	for i, r := range rows {
		if r.Quantity < 0 {
			return MatchResult{}, fmt.Errorf("row %d (%s): negative quantity %d", i, r.Symbol, r.Quantity)
		}
		if math.IsNaN(r.Price) || math.IsInf(r.Price, 0) {
			return MatchResult{}, fmt.Errorf("row %d (%s): non-finite price", i, r.Symbol)
		}
	}

	grouped := groupBySymbol(rows)
	symbols := make([]string, 0, len(grouped))
	for s := range grouped {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols) // deterministic pass order, map iteration is not

	for _, s := range symbols {
		matched, unmatched := matchSymbol(grouped[s])
		res.Trades = append(res.Trades, matched...)
		res.UnmatchedSellQty += unmatched
	}

	// Streaks, rolling windows and cumulative snapshots all depend on a
	// single chronological order across symbols.
	sortMatched(res.Trades)
	return res, nil
}

// matchSymbol runs the FIFO pass for the rows of one symbol, already
// isolated from every other symbol.
func matchSymbol(rows []models.TradeRow) ([]models.MatchedTrade, int64) {
	sortRows(rows)

	var queue []buyLot
	var matched []models.MatchedTrade
	var unmatched int64

	for _, r := range rows {
		if r.Quantity == 0 {
			continue
		}

		switch r.Side {
		case models.SideBuy:
			queue = append(queue, buyLot{row: r, quantity: r.Quantity})

		case models.SideSell:
			remaining := r.Quantity
			for remaining > 0 && len(queue) > 0 {
				lot := queue[0]
				qty := min64(remaining, lot.quantity)

				holding := holdingDays(lot.row.TradeDate, r.TradeDate)
				matched = append(matched, models.MatchedTrade{
					Symbol:      r.Symbol,
					BuyDate:     lot.row.TradeDate,
					SellDate:    r.TradeDate,
					Quantity:    qty,
					BuyPrice:    lot.row.Price,
					SellPrice:   r.Price,
					Pnl:         float64(qty) * (r.Price - lot.row.Price),
					HoldingDays: holding,
					Style:       models.StyleOf(holding),
				})

				remaining -= qty
				if qty == lot.quantity {
					queue = queue[1:]
				} else {
					queue[0].quantity -= qty
				}
			}
			// Queue drained with sell quantity left over: no buy history.
			unmatched += remaining
		}
	}

	return matched, unmatched
}

// sortRows orders rows by trade date, then execution time when present,
// then original input order. sort.SliceStable keeps the export's row
// order as the final tie-break.
func sortRows(rows []models.TradeRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].TradeDate.Equal(rows[j].TradeDate) {
			return rows[i].TradeDate.Before(rows[j].TradeDate)
		}
		ei, ej := rows[i].ExecutedAt, rows[j].ExecutedAt
		if !ei.IsZero() && !ej.IsZero() && !ei.Equal(ej) {
			return ei.Before(ej)
		}
		return false
	})
}

// sortMatched orders matched trades chronologically by sell date, buy date
// breaking ties, emission order after that.
func sortMatched(trades []models.MatchedTrade) {
	sort.SliceStable(trades, func(i, j int) bool {
		if !trades[i].SellDate.Equal(trades[j].SellDate) {
			return trades[i].SellDate.Before(trades[j].SellDate)
		}
		return trades[i].BuyDate.Before(trades[j].BuyDate)
	})
}

// groupBySymbol splits rows per symbol, preserving input order within
// each group. Rows without a symbol are dropped.
func groupBySymbol(rows []models.TradeRow) map[string][]models.TradeRow {
	grouped := make(map[string][]models.TradeRow)
	for _, r := range rows {
		if r.Symbol == "" {
			continue
		}
		grouped[r.Symbol] = append(grouped[r.Symbol], r)
	}
	return grouped
}

// holdingDays is the whole-day span between buy and sell dates.
// Same-day round trips yield 0 (intraday). Dates are compared at
// day granularity so time-of-day noise in the export cannot shift
// a bucket.
func holdingDays(buy, sell time.Time) int {
	b := time.Date(buy.Year(), buy.Month(), buy.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(sell.Year(), sell.Month(), sell.Day(), 0, 0, 0, 0, time.UTC)
	d := int(s.Sub(b).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
