package analytics

import (
	"math"
	"reflect"
	"testing"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

func reportFixture() ([]models.TradeRow, models.PnlStatement) {
	rows := []models.TradeRow{
		buy("A", 10, 10, 100), sell("A", 12, 10, 110), // +100, velocity
		buy("B", 10, 5, 50), sell("B", 10, 3, 40), sell("B", 12, 2, 60), // -30 intraday, +20 velocity
		buy("C", 10, 4, 200), sell("C", 25, 4, 210), // +40, swing
	}
	stmt := models.PnlStatement{
		Rows: []models.PnlRow{
			{Symbol: "A", RealizedPnl: 100},
			{Symbol: "B", RealizedPnl: -10},
			{Symbol: "C", RealizedPnl: 40},
		},
		TotalCharges: 50,
	}
	return rows, stmt
}

func TestBuildReport(t *testing.T) {
	rows, stmt := reportFixture()
	r, err := BuildReport("ds-1", rows, stmt, nil, Filter{}, Params{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if r.DatasetID != "ds-1" || r.TradeCount != 4 || r.UnmatchedSellQty != 0 {
		t.Fatalf("header: %+v", r)
	}
	if r.GrossPnl != 130 {
		t.Fatalf("gross = %v, want 130", r.GrossPnl)
	}
	// The unfiltered set absorbs the entire charge total.
	if math.Abs(r.AllocatedCharges-50) > 1e-9 {
		t.Fatalf("charges = %v, want 50", r.AllocatedCharges)
	}
	if math.Abs(r.NetPnl-80) > 1e-9 {
		t.Fatalf("net = %v, want 80", r.NetPnl)
	}
	if r.WinRate != 75 {
		t.Fatalf("win rate = %v, want 75", r.WinRate)
	}
	if pf := r.ProfitFactor; pf.Undefined || math.Abs(pf.Value-160.0/30.0) > 1e-9 {
		t.Fatalf("profit factor = %+v", pf)
	}

	// Every scope map carries all three scopes.
	for _, scope := range []models.Scope{models.ScopeOverall, models.ScopeIntraday, models.ScopeSwing} {
		if _, ok := r.Expectancy[scope]; !ok {
			t.Fatalf("missing expectancy scope %s", scope)
		}
		if _, ok := r.Streaks[scope]; !ok {
			t.Fatalf("missing streak scope %s", scope)
		}
	}
	if r.Expectancy[models.ScopeIntraday].Trades != 1 || r.Expectancy[models.ScopeSwing].Trades != 3 {
		t.Fatalf("scope trade counts: %+v", r.Expectancy)
	}

	if len(r.Styles) != 5 {
		t.Fatalf("styles=%d, want 5", len(r.Styles))
	}
	if len(r.Daily) == 0 || len(r.Cumulative) != len(r.Daily) {
		t.Fatalf("series: daily=%d cumulative=%d", len(r.Daily), len(r.Cumulative))
	}
	if len(r.CumulativeMetrics) != r.TradeCount {
		t.Fatalf("cumulative metrics=%d, want %d", len(r.CumulativeMetrics), r.TradeCount)
	}
	if len(r.TopWinners) != 3 || r.TopWinners[0].Symbol != "A" {
		t.Fatalf("winners: %+v", r.TopWinners)
	}
	if r.TopLosers[0].Symbol != "B" {
		t.Fatalf("losers: %+v", r.TopLosers)
	}
}

func TestBuildReport_Empty(t *testing.T) {
	r, err := BuildReport("ds-1", nil, models.PnlStatement{}, nil, Filter{}, Params{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if r.TradeCount != 0 || r.WinRate != 0 || r.NetPnl != 0 || r.Sharpe != 0 || r.MaxDrawdown != 0 {
		t.Fatalf("empty report not all zeros: %+v", r)
	}
	if r.ProfitFactor.Undefined || r.ProfitFactor.Value != 0 {
		t.Fatalf("empty profit factor: %+v", r.ProfitFactor)
	}
}

// Charges are allocated against the unfiltered turnover, so the net P&L
// of complementary filters sums to the unfiltered net P&L.
func TestBuildReport_ChargeAdditivityUnderFilters(t *testing.T) {
	rows, stmt := reportFixture()

	full, err := BuildReport("ds", rows, stmt, nil, Filter{}, Params{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	onlyA, err := BuildReport("ds", rows, stmt, nil, Filter{Symbols: []string{"A"}}, Params{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	rest, err := BuildReport("ds", rows, stmt, nil, Filter{Symbols: []string{"B", "C"}}, Params{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if math.Abs(onlyA.AllocatedCharges+rest.AllocatedCharges-full.AllocatedCharges) > 1e-9 {
		t.Fatalf("charge shares not additive: %v + %v != %v",
			onlyA.AllocatedCharges, rest.AllocatedCharges, full.AllocatedCharges)
	}
	if math.Abs(onlyA.NetPnl+rest.NetPnl-full.NetPnl) > 1e-9 {
		t.Fatalf("net not additive: %v + %v != %v", onlyA.NetPnl, rest.NetPnl, full.NetPnl)
	}
}

func TestBuildReport_Idempotent(t *testing.T) {
	rows, stmt := reportFixture()
	first, err := BuildReport("ds", rows, stmt, nil, Filter{}, Params{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := BuildReport("ds", rows, stmt, nil, Filter{}, Params{})
		if err != nil {
			t.Fatalf("BuildReport: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("report differs on rebuild %d", i)
		}
	}
}

func TestBuildReport_SectorBreakdown(t *testing.T) {
	rows, stmt := reportFixture()
	sectors := map[string]string{"A": "Banking", "B": "Banking"}

	r, err := BuildReport("ds", rows, stmt, sectors, Filter{}, Params{})
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if len(r.Sectors) != 2 {
		t.Fatalf("sectors=%d, want 2", len(r.Sectors))
	}
	// Alphabetical: Banking first, Unknown second (unmapped C).
	if r.Sectors[0].Sector != "Banking" || r.Sectors[0].Trades != 3 {
		t.Fatalf("sector0: %+v", r.Sectors[0])
	}
	if r.Sectors[1].Sector != "Unknown" || r.Sectors[1].Trades != 1 {
		t.Fatalf("sector1: %+v", r.Sectors[1])
	}
}

func TestReconcile(t *testing.T) {
	trades := []models.MatchedTrade{
		mt("A", 10, 12, 10, 100, 110), // +100
		mt("B", 10, 11, 5, 50, 40),    // -50
	}
	pnlRows := []models.PnlRow{
		{Symbol: "A", RealizedPnl: 100},  // matches
		{Symbol: "B", RealizedPnl: -20},  // differs by -30
		{Symbol: "C", RealizedPnl: 75},   // no matched trades at all
	}

	deltas := Reconcile(trades, pnlRows)
	if len(deltas) != 2 {
		t.Fatalf("deltas=%d, want 2", len(deltas))
	}
	if deltas[0].Symbol != "B" || deltas[0].Delta != -30 {
		t.Fatalf("delta0: %+v", deltas[0])
	}
	if deltas[1].Symbol != "C" || deltas[1].Delta != -75 {
		t.Fatalf("delta1: %+v", deltas[1])
	}
}

func TestReconcile_WithinTolerance(t *testing.T) {
	trades := []models.MatchedTrade{mt("A", 10, 12, 10, 100, 110)}
	pnlRows := []models.PnlRow{{Symbol: "A", RealizedPnl: 100.005}}
	if deltas := Reconcile(trades, pnlRows); len(deltas) != 0 {
		t.Fatalf("sub-tolerance delta reported: %+v", deltas)
	}
}
