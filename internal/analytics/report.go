package analytics

import (
	"math"
	"sort"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// Params carries the configuration knobs the report depends on.
type Params struct {
	RiskFreeRate   float64
	RollingWindow  int
	DisplayCap     float64
	InitialCapital float64
}

// ReconDelta is one per-symbol difference between FIFO-derived realized
// P&L and the broker statement's realized P&L. Nonzero deltas usually
// mean the tradebook is missing history the statement accounts for.
type ReconDelta struct {
	Symbol       string
	MatchedPnl   float64
	StatementPnl float64
	Delta        float64
}

// BuildReport derives the full analytics snapshot for one dataset and
// filter. The filter is applied to raw rows, the matched set is rebuilt,
// and every displayed figure comes from that one matched set. Charges are
// always allocated against the turnover of the unfiltered matched set so
// that allocations stay additive across any partition.
//
// The function is deterministic and side-effect free: identical inputs
// produce a bit-identical report.
func BuildReport(datasetID string, rows []models.TradeRow, stmt models.PnlStatement, sectors map[string]string, f Filter, p Params) (models.Report, error) {
	if p.RollingWindow <= 0 {
		p.RollingWindow = DefaultRollingWindow
	}
	if p.DisplayCap <= 0 {
		p.DisplayCap = 5
	}

	// The allocation denominator covers all activity, filtered or not.
	full, err := MatchTrades(rows)
	if err != nil {
		return models.Report{}, err
	}
	totalTurnover := TotalTurnover(full.Trades)

	matched := full
	if !f.IsZero() {
		matched, err = MatchTrades(f.Apply(rows, sectors))
		if err != nil {
			return models.Report{}, err
		}
	}
	trades := matched.Trades

	var gross float64
	for _, t := range trades {
		gross += t.Pnl
	}
	charges := AllocateCharges(trades, stmt.TotalCharges, totalTurnover)

	daily := DailyPnl(trades, stmt.TotalCharges, totalTurnover)
	cumulative := CumulativePnl(daily)

	r := models.Report{
		DatasetID:        datasetID,
		TradeCount:       len(trades),
		UnmatchedSellQty: matched.UnmatchedSellQty,

		GrossPnl:         gross,
		AllocatedCharges: charges,
		NetPnl:           gross - charges,

		WinRate:        WinRate(trades),
		ProfitFactor:   ProfitFactor(trades),
		RiskReward:     RiskReward(trades),
		AvgHoldingDays: AvgHoldingDays(trades),
		Sharpe:         Sharpe(daily, p.RiskFreeRate),
		MaxDrawdown:    MaxDrawdown(cumulative),

		Expectancy: expectancyByScope(trades),
		Streaks:    streaksByScope(trades),
		Styles:     StyleBreakdown(trades),

		Daily:      daily,
		Weekly:     WeeklyPnl(daily),
		Monthly:    MonthlyPnl(daily),
		Cumulative: cumulative,
		Equity:     EquityCurve(daily, p.InitialCapital),

		Rolling:           RollingExpectancyByScope(trades, p.RollingWindow),
		MonthlyExpectancy: MonthlyExpectancyByScope(trades),
		CumulativeMetrics: CumulativeMetrics(trades, p.DisplayCap),

		WinRateBySymbol:      WinRateBySymbol(trades),
		HoldingDaysBySymbol:  HoldingDaysBySymbol(trades),
		DurationDistribution: DurationDistribution(trades),
		Sectors:              SectorBreakdown(trades, sectors),
	}

	pnlRows := f.ApplyPnl(stmt.Rows, sectors)
	r.TopWinners = topBy(pnlRows, 10, func(a, b models.PnlRow) bool { return a.RealizedPnl > b.RealizedPnl })
	r.TopLosers = topBy(pnlRows, 10, func(a, b models.PnlRow) bool { return a.RealizedPnl < b.RealizedPnl })

	return r, nil
}

func expectancyByScope(trades []models.MatchedTrade) map[models.Scope]models.ExpectancyStats {
	out := make(map[models.Scope]models.ExpectancyStats, 3)
	for _, scope := range []models.Scope{models.ScopeOverall, models.ScopeIntraday, models.ScopeSwing} {
		out[scope] = Expectancy(ByScope(trades, scope))
	}
	return out
}

func streaksByScope(trades []models.MatchedTrade) map[models.Scope]models.StreakStats {
	out := make(map[models.Scope]models.StreakStats, 3)
	for _, scope := range []models.Scope{models.ScopeOverall, models.ScopeIntraday, models.ScopeSwing} {
		out[scope] = Streaks(ByScope(trades, scope))
	}
	return out
}

// SectorBreakdown groups matched trades by the sector of their symbol.
// Symbols without a mapping land in "Unknown"; the mapping being entirely
// absent simply puts everything there.
func SectorBreakdown(trades []models.MatchedTrade, sectors map[string]string) []models.SectorStats {
	grouped := make(map[string][]models.MatchedTrade)
	for _, t := range trades {
		sector, ok := sectors[t.Symbol]
		if !ok || sector == "" {
			sector = "Unknown"
		}
		grouped[sector] = append(grouped[sector], t)
	}

	out := make([]models.SectorStats, 0, len(grouped))
	for sector, ts := range grouped {
		stats := models.SectorStats{Sector: sector, Trades: len(ts), WinRate: WinRate(ts)}
		for _, t := range ts {
			stats.NetPnl += t.Pnl
		}
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sector < out[j].Sector })
	return out
}

// Reconcile compares FIFO-derived realized P&L per symbol against the
// statement's figure. Deltas are informational: the matched set remains
// the source of truth for every displayed metric.
func Reconcile(trades []models.MatchedTrade, pnlRows []models.PnlRow) []ReconDelta {
	matchedPnl := make(map[string]float64)
	for _, t := range trades {
		matchedPnl[t.Symbol] += t.Pnl
	}

	var out []ReconDelta
	for _, row := range pnlRows {
		m := matchedPnl[row.Symbol]
		delta := m - row.RealizedPnl
		if math.Abs(delta) > 0.01 {
			out = append(out, ReconDelta{
				Symbol:       row.Symbol,
				MatchedPnl:   m,
				StatementPnl: row.RealizedPnl,
				Delta:        delta,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

func topBy(rows []models.PnlRow, n int, less func(a, b models.PnlRow) bool) []models.PnlRow {
	out := append([]models.PnlRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
