package analytics

import (
	"testing"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

func TestStyleOf(t *testing.T) {
	cases := []struct {
		days int
		want models.StyleBucket
	}{
		{0, models.StyleIntraday},
		{1, models.StyleBTST},
		{2, models.StyleVelocity},
		{5, models.StyleVelocity},
		{6, models.StyleSwing},
		{60, models.StyleSwing},
	}
	for _, c := range cases {
		if got := models.StyleOf(c.days); got != c.want {
			t.Fatalf("StyleOf(%d) = %v, want %v", c.days, got, c.want)
		}
	}
}

func styleFixture() []models.MatchedTrade {
	return []models.MatchedTrade{
		mt("A", 10, 10, 1, 100, 110), // intraday, +10
		mt("A", 10, 10, 1, 100, 90),  // intraday, -10
		mt("B", 10, 11, 1, 100, 120), // btst, +20
		mt("C", 10, 13, 1, 100, 130), // velocity, +30
		mt("D", 10, 20, 1, 100, 60),  // swing, -40
	}
}

func TestStyleBreakdown_DisjointPlusPureSwing(t *testing.T) {
	trades := styleFixture()
	rows := StyleBreakdown(trades)
	if len(rows) != 5 {
		t.Fatalf("rows=%d, want 5", len(rows))
	}

	byName := make(map[string]models.StyleStats, len(rows))
	for _, r := range rows {
		byName[r.Bucket] = r
	}

	// The four disjoint buckets cover every trade exactly once.
	disjoint := byName["intraday"].Trades + byName["btst"].Trades +
		byName["velocity"].Trades + byName["swing"].Trades
	if disjoint != len(trades) {
		t.Fatalf("disjoint sum = %d, want %d", disjoint, len(trades))
	}

	// pure_swing is the union of the three overnight buckets.
	wantPure := byName["btst"].Trades + byName["velocity"].Trades + byName["swing"].Trades
	if byName["pure_swing"].Trades != wantPure {
		t.Fatalf("pure_swing = %d, want %d", byName["pure_swing"].Trades, wantPure)
	}

	// intraday + pure_swing also covers everything.
	if byName["intraday"].Trades+byName["pure_swing"].Trades != len(trades) {
		t.Fatalf("intraday+pure_swing != total")
	}

	if byName["intraday"].NetPnl != 0 || byName["intraday"].WinRate != 50 {
		t.Fatalf("intraday stats: %+v", byName["intraday"])
	}
	if byName["pure_swing"].NetPnl != 10 {
		t.Fatalf("pure_swing net = %v, want 10", byName["pure_swing"].NetPnl)
	}
}

func TestStyleBreakdown_EmptyBucketsPresent(t *testing.T) {
	rows := StyleBreakdown(nil)
	if len(rows) != 5 {
		t.Fatalf("rows=%d, want 5", len(rows))
	}
	for _, r := range rows {
		if r.Trades != 0 || r.WinRate != 0 || r.NetPnl != 0 {
			t.Fatalf("nonzero empty bucket: %+v", r)
		}
	}
}

func TestByScope(t *testing.T) {
	trades := styleFixture()

	if got := ByScope(trades, models.ScopeOverall); len(got) != len(trades) {
		t.Fatalf("overall len=%d", len(got))
	}
	if got := ByScope(trades, models.ScopeIntraday); len(got) != 2 {
		t.Fatalf("intraday len=%d, want 2", len(got))
	}
	swing := ByScope(trades, models.ScopeSwing)
	if len(swing) != 3 {
		t.Fatalf("swing len=%d, want 3", len(swing))
	}
	for _, tr := range swing {
		if tr.HoldingDays == 0 {
			t.Fatalf("intraday trade in swing scope: %+v", tr)
		}
	}
}
