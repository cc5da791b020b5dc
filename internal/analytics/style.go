package analytics

import "github.com/zerojournal/tradepulse/internal/domain/models"

// InScope reports whether a matched trade belongs to the given scope.
// ScopeSwing is the pure-swing view: anything held overnight or longer.
func InScope(t models.MatchedTrade, scope models.Scope) bool {
	switch scope {
	case models.ScopeIntraday:
		return t.Style == models.StyleIntraday
	case models.ScopeSwing:
		return t.HoldingDays > 0
	default:
		return true
	}
}

// ByScope returns the chronological subset of trades in the given scope.
func ByScope(trades []models.MatchedTrade, scope models.Scope) []models.MatchedTrade {
	if scope == models.ScopeOverall {
		return trades
	}
	var out []models.MatchedTrade
	for _, t := range trades {
		if InScope(t, scope) {
			out = append(out, t)
		}
	}
	return out
}

// byBucket returns the trades of one disjoint style bucket.
func byBucket(trades []models.MatchedTrade, b models.StyleBucket) []models.MatchedTrade {
	var out []models.MatchedTrade
	for _, t := range trades {
		if t.Style == b {
			out = append(out, t)
		}
	}
	return out
}

// StyleBreakdown summarizes each disjoint bucket plus the derived
// pure-swing view. The pure-swing row is a union of btst, velocity and
// swing; callers summing "total trades analyzed" must use the four
// disjoint rows only.
func StyleBreakdown(trades []models.MatchedTrade) []models.StyleStats {
	buckets := []models.StyleBucket{
		models.StyleIntraday,
		models.StyleBTST,
		models.StyleVelocity,
		models.StyleSwing,
	}

	out := make([]models.StyleStats, 0, len(buckets)+1)
	for _, b := range buckets {
		out = append(out, styleStats(b.String(), byBucket(trades, b)))
	}
	out = append(out, styleStats("pure_swing", ByScope(trades, models.ScopeSwing)))
	return out
}

func styleStats(name string, trades []models.MatchedTrade) models.StyleStats {
	s := models.StyleStats{Bucket: name, Trades: len(trades)}
	if len(trades) == 0 {
		return s
	}
	for _, t := range trades {
		s.NetPnl += t.Pnl
	}
	s.AvgPnl = s.NetPnl / float64(len(trades))
	s.WinRate = WinRate(trades)
	return s
}
