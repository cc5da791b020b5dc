package analytics

import (
	"testing"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

func TestRollingExpectancy_BelowWindow(t *testing.T) {
	trades := []models.MatchedTrade{
		mt("X", 10, 12, 1, 100, 110),
		mt("X", 10, 12, 1, 100, 90),
	}
	if got := RollingExpectancy(trades, 3); got != nil {
		t.Fatalf("expected nil below window, got %+v", got)
	}
}

func TestRollingExpectancy(t *testing.T) {
	// +10, -10, +10, +10: window of 2.
	trades := []models.MatchedTrade{
		mt("X", 10, 12, 1, 100, 110),
		mt("X", 10, 12, 1, 100, 90),
		mt("X", 10, 13, 1, 100, 110),
		mt("X", 10, 14, 1, 100, 110),
	}
	got := RollingExpectancy(trades, 2)
	if len(got) != 3 {
		t.Fatalf("points=%d, want 3", len(got))
	}
	if got[0].TradeNumber != 2 || got[2].TradeNumber != 4 {
		t.Fatalf("trade numbers: %+v", got)
	}
	// Window [1,2]: 0.5*10 - 0.5*10 = 0.
	if got[0].Expectancy != 0 {
		t.Fatalf("point0 = %v, want 0", got[0].Expectancy)
	}
	// Window [3,4]: all winners, expectancy 10.
	if got[2].Expectancy != 10 {
		t.Fatalf("point2 = %v, want 10", got[2].Expectancy)
	}
}

func TestRollingExpectancy_DefaultWindow(t *testing.T) {
	trades := make([]models.MatchedTrade, DefaultRollingWindow)
	for i := range trades {
		trades[i] = mt("X", 10, 12, 1, 100, 110)
	}
	got := RollingExpectancy(trades, 0)
	if len(got) != 1 || got[0].TradeNumber != DefaultRollingWindow {
		t.Fatalf("default window not applied: %+v", got)
	}
}

func TestRollingExpectancyByScope(t *testing.T) {
	// Two intraday, two overnight; window of 2 so each scope emits.
	trades := []models.MatchedTrade{
		mt("A", 10, 10, 1, 100, 110),
		mt("A", 11, 11, 1, 100, 90),
		mt("B", 10, 12, 1, 100, 110),
		mt("B", 11, 14, 1, 100, 120),
	}
	got := RollingExpectancyByScope(trades, 2)
	if len(got[models.ScopeOverall]) != 3 {
		t.Fatalf("overall points=%d, want 3", len(got[models.ScopeOverall]))
	}
	// Scope series window over their own trades only.
	if len(got[models.ScopeIntraday]) != 1 || len(got[models.ScopeSwing]) != 1 {
		t.Fatalf("scope points: intraday=%d swing=%d", len(got[models.ScopeIntraday]), len(got[models.ScopeSwing]))
	}
}

func TestMonthlyExpectancy(t *testing.T) {
	trades := []models.MatchedTrade{
		mt("X", 10, 12, 1, 100, 110), // Jan, +10
		mt("X", 10, 20, 1, 100, 90),  // Jan, -10
		{Symbol: "X", SellDate: day(1).AddDate(0, 1, 5), Quantity: 1, BuyPrice: 100, SellPrice: 130, Pnl: 30},
	}
	got := MonthlyExpectancy(trades)
	if len(got) != 2 {
		t.Fatalf("months=%d, want 2", len(got))
	}
	if !got[0].Month.Equal(day(1)) || got[0].Stats.Trades != 2 {
		t.Fatalf("month0: %+v", got[0])
	}
	if got[1].Stats.Trades != 1 || got[1].Stats.Expectancy != 30 {
		t.Fatalf("month1: %+v", got[1])
	}
}

func TestCumulativeMetrics(t *testing.T) {
	trades := []models.MatchedTrade{
		mt("X", 10, 12, 10, 100, 110), // +100
		mt("X", 10, 13, 10, 100, 95),  // -50
	}
	got := CumulativeMetrics(trades, 5)
	if len(got) != 2 {
		t.Fatalf("points=%d, want 2", len(got))
	}

	// After trade 1: all winners, undefined ratio capped at 5, raw kept.
	p1 := got[0]
	if p1.TradeNumber != 1 || p1.WinRate != 100 {
		t.Fatalf("point1: %+v", p1)
	}
	if !p1.ProfitFactor.Undefined || p1.ProfitFactorCapped != 5 {
		t.Fatalf("point1 ratio: %+v capped=%v", p1.ProfitFactor, p1.ProfitFactorCapped)
	}

	// After trade 2: 100/50 = 2, finite and below the cap.
	p2 := got[1]
	if p2.WinRate != 50 {
		t.Fatalf("point2 win rate = %v", p2.WinRate)
	}
	if p2.ProfitFactor.Undefined || p2.ProfitFactor.Value != 2 || p2.ProfitFactorCapped != 2 {
		t.Fatalf("point2 ratio: %+v capped=%v", p2.ProfitFactor, p2.ProfitFactorCapped)
	}
	if !p2.Date.Equal(day(13)) {
		t.Fatalf("point2 date: %v", p2.Date)
	}
}

func TestCumulativeMetrics_Empty(t *testing.T) {
	if got := CumulativeMetrics(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}
