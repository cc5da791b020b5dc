package analytics

import (
	"testing"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

func TestWinRate(t *testing.T) {
	if got := WinRate(nil); got != 0 {
		t.Fatalf("empty win rate = %v, want 0", got)
	}

	trades := []models.MatchedTrade{
		mt("X", 10, 10, 3, 50, 40), // -30
		mt("X", 10, 12, 2, 50, 60), // +20
	}
	if got := WinRate(trades); got != 50 {
		t.Fatalf("win rate = %v, want 50", got)
	}

	// Break-even trades count as non-wins.
	trades = append(trades, mt("X", 10, 11, 1, 50, 50))
	want := 1.0 / 3.0 * 100
	if got := WinRate(trades); got != want {
		t.Fatalf("win rate = %v, want %v", got, want)
	}
}

func TestProfitFactor(t *testing.T) {
	winner := mt("X", 10, 12, 10, 100, 110) // +100
	loser := mt("X", 10, 11, 10, 100, 96)   // -40

	pf := ProfitFactor([]models.MatchedTrade{winner, loser})
	if pf.Undefined || pf.Value != 2.5 {
		t.Fatalf("profit factor = %+v, want 2.5", pf)
	}

	// All winners: undefined, not +Inf.
	pf = ProfitFactor([]models.MatchedTrade{winner})
	if !pf.Undefined {
		t.Fatalf("profit factor = %+v, want undefined", pf)
	}

	// Empty or all break-even: 0.0.
	if pf = ProfitFactor(nil); pf.Undefined || pf.Value != 0 {
		t.Fatalf("empty profit factor = %+v, want 0", pf)
	}
	flat := mt("X", 10, 10, 5, 100, 100)
	if pf = ProfitFactor([]models.MatchedTrade{flat}); pf.Undefined || pf.Value != 0 {
		t.Fatalf("break-even profit factor = %+v, want 0", pf)
	}
}

func TestProfitFactor_CapPreservesRaw(t *testing.T) {
	// Raw ratio above the display cap: capped for charts, raw retained.
	winner := mt("X", 10, 12, 10, 100, 200) // +1000
	loser := mt("X", 10, 11, 10, 100, 99)   // -10

	pf := ProfitFactor([]models.MatchedTrade{winner, loser})
	if pf.Undefined || pf.Value != 100 {
		t.Fatalf("raw = %+v, want 100", pf)
	}
	if got := pf.Capped(5); got != 5 {
		t.Fatalf("capped = %v, want 5", got)
	}
	if pf.Value != 100 {
		t.Fatalf("raw mutated by capping: %v", pf.Value)
	}

	// Undefined caps to the cap itself.
	undef := ProfitFactor([]models.MatchedTrade{winner})
	if got := undef.Capped(5); got != 5 {
		t.Fatalf("undefined capped = %v, want 5", got)
	}
}

func TestExpectancy(t *testing.T) {
	empty := Expectancy(nil)
	if empty != (models.ExpectancyStats{}) {
		t.Fatalf("empty expectancy = %+v, want zeros", empty)
	}

	trades := []models.MatchedTrade{
		mt("X", 10, 12, 10, 100, 110), // +100
		mt("X", 10, 12, 10, 100, 112), // +120
		mt("X", 10, 11, 10, 100, 95),  // -50
		mt("X", 10, 11, 10, 100, 100), // 0, counts in neither side
	}
	s := Expectancy(trades)
	if s.Wins != 2 || s.Losses != 1 || s.Trades != 4 {
		t.Fatalf("counts: %+v", s)
	}
	if s.AvgWin != 110 || s.AvgLoss != 50 {
		t.Fatalf("averages: %+v", s)
	}
	if s.WinRate != 50 {
		t.Fatalf("win rate = %v, want 50", s.WinRate)
	}
	// 0.5*110 - 0.25*50 = 42.5
	if s.Expectancy != 42.5 {
		t.Fatalf("expectancy = %v, want 42.5", s.Expectancy)
	}
}

func TestRiskReward(t *testing.T) {
	trades := []models.MatchedTrade{
		mt("X", 10, 12, 10, 100, 110), // +100
		mt("X", 10, 11, 10, 100, 96),  // -40
	}
	rr := RiskReward(trades)
	if rr.Undefined || rr.Value != 2.5 {
		t.Fatalf("risk-reward = %+v, want 2.5", rr)
	}

	if rr = RiskReward(trades[:1]); !rr.Undefined {
		t.Fatalf("all-winner risk-reward = %+v, want undefined", rr)
	}
	if rr = RiskReward(nil); rr.Undefined || rr.Value != 0 {
		t.Fatalf("empty risk-reward = %+v, want 0", rr)
	}
}

func TestStreaks(t *testing.T) {
	w := mt("X", 10, 12, 10, 100, 110)
	l := mt("X", 10, 11, 10, 100, 90)
	be := mt("X", 10, 11, 10, 100, 100)

	cases := []struct {
		name   string
		trades []models.MatchedTrade
		want   models.StreakStats
	}{
		{"empty", nil, models.StreakStats{}},
		{"all wins", []models.MatchedTrade{w, w, w}, models.StreakStats{MaxWinStreak: 3, Current: 3, CurrentType: "win"}},
		{"alternating", []models.MatchedTrade{w, l, w, l}, models.StreakStats{MaxWinStreak: 1, MaxLossStreak: 1, Current: 1, CurrentType: "loss"}},
		{"runs", []models.MatchedTrade{w, w, l, l, l, w}, models.StreakStats{MaxWinStreak: 2, MaxLossStreak: 3, Current: 1, CurrentType: "win"}},
		{"break-even resets", []models.MatchedTrade{w, w, be, w}, models.StreakStats{MaxWinStreak: 2, Current: 1, CurrentType: "win"}},
		{"ends on break-even", []models.MatchedTrade{w, be}, models.StreakStats{MaxWinStreak: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Streaks(c.trades); got != c.want {
				t.Fatalf("streaks = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestAvgHoldingDays(t *testing.T) {
	if got := AvgHoldingDays(nil); got != 0 {
		t.Fatalf("empty avg holding = %v", got)
	}

	trades := []models.MatchedTrade{
		mt("X", 10, 10, 30, 100, 101), // 0 days x 30
		mt("X", 10, 20, 10, 100, 101), // 10 days x 10
	}
	// (0*30 + 10*10) / 40 = 2.5
	if got := AvgHoldingDays(trades); got != 2.5 {
		t.Fatalf("avg holding = %v, want 2.5", got)
	}
}

func TestWinRateBySymbol(t *testing.T) {
	trades := []models.MatchedTrade{
		mt("A", 10, 12, 1, 100, 110),
		mt("A", 10, 12, 1, 100, 90),
		mt("B", 10, 12, 1, 100, 110),
		mt("C", 10, 12, 1, 100, 110),
	}
	got := WinRateBySymbol(trades)
	if len(got) != 3 {
		t.Fatalf("len=%d", len(got))
	}
	// B and C tie at 100, alphabetical tie-break, then A at 50.
	if got[0].Symbol != "B" || got[1].Symbol != "C" || got[2].Symbol != "A" {
		t.Fatalf("order: %+v", got)
	}
	if got[2].Value != 50 {
		t.Fatalf("A win rate = %v", got[2].Value)
	}
}

func TestDurationDistribution(t *testing.T) {
	trades := []models.MatchedTrade{
		mt("X", 10, 10, 5, 100, 101),
		mt("X", 10, 10, 3, 100, 99),
		mt("X", 10, 12, 7, 100, 101),
	}
	got := DurationDistribution(trades)
	if len(got) != 2 {
		t.Fatalf("bins=%d", len(got))
	}
	if got[0].Days != 0 || got[0].Trades != 2 || got[0].Quantity != 8 {
		t.Fatalf("bin0: %+v", got[0])
	}
	if got[1].Days != 2 || got[1].Trades != 1 || got[1].Quantity != 7 {
		t.Fatalf("bin1: %+v", got[1])
	}
}
