package analytics

import (
	"sort"
	"time"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// DefaultRollingWindow is the number of trades in a rolling-expectancy
// window when configuration does not override it.
const DefaultRollingWindow = 20

// RollingExpectancy recomputes expectancy over a sliding window of the
// most recent `window` chronological trades, emitting one point per trade
// index once at least `window` trades exist. Trade numbers are 1-based
// positions within the given (already scope-filtered) slice.
func RollingExpectancy(trades []models.MatchedTrade, window int) []models.RollingPoint {
	if window <= 0 {
		window = DefaultRollingWindow
	}
	if len(trades) < window {
		return nil
	}

	out := make([]models.RollingPoint, 0, len(trades)-window+1)
	for i := window; i <= len(trades); i++ {
		s := Expectancy(trades[i-window : i])
		out = append(out, models.RollingPoint{TradeNumber: i, Expectancy: s.Expectancy})
	}
	return out
}

// RollingExpectancyByScope produces the overall, intraday and pure-swing
// rolling series, each windowed over the trades of its own scope.
func RollingExpectancyByScope(trades []models.MatchedTrade, window int) map[models.Scope][]models.RollingPoint {
	out := make(map[models.Scope][]models.RollingPoint, 3)
	for _, scope := range []models.Scope{models.ScopeOverall, models.ScopeIntraday, models.ScopeSwing} {
		out[scope] = RollingExpectancy(ByScope(trades, scope), window)
	}
	return out
}

// MonthlyExpectancy groups a scope's trades by the calendar month of
// their sell date and computes the expectancy decomposition per month.
func MonthlyExpectancy(trades []models.MatchedTrade) []models.MonthExpectancy {
	byMonth := make(map[time.Time][]models.MatchedTrade)
	for _, t := range trades {
		m := monthStart(t.SellDate)
		byMonth[m] = append(byMonth[m], t)
	}

	out := make([]models.MonthExpectancy, 0, len(byMonth))
	for m, ts := range byMonth {
		out = append(out, models.MonthExpectancy{Month: m, Stats: Expectancy(ts)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// MonthlyExpectancyByScope is MonthlyExpectancy for each reporting scope.
func MonthlyExpectancyByScope(trades []models.MatchedTrade) map[models.Scope][]models.MonthExpectancy {
	out := make(map[models.Scope][]models.MonthExpectancy, 3)
	for _, scope := range []models.Scope{models.ScopeOverall, models.ScopeIntraday, models.ScopeSwing} {
		out[scope] = MonthlyExpectancy(ByScope(trades, scope))
	}
	return out
}

// CumulativeMetrics computes the "as of trade i" trajectory: for every
// index i the win rate, profit factor, risk-reward and expectancy over
// trades [0..i]. Ratio values carry both the raw figure and the
// display-capped one so charts can clamp without losing the tooltip
// value.
func CumulativeMetrics(trades []models.MatchedTrade, displayCap float64) []models.CumulativePoint {
	out := make([]models.CumulativePoint, 0, len(trades))
	for i := range trades {
		prefix := trades[:i+1]
		pf := ProfitFactor(prefix)
		rr := RiskReward(prefix)
		out = append(out, models.CumulativePoint{
			TradeNumber:        i + 1,
			Date:               trades[i].SellDate,
			WinRate:            WinRate(prefix),
			ProfitFactor:       pf,
			ProfitFactorCapped: pf.Capped(displayCap),
			RiskReward:         rr,
			RiskRewardCapped:   rr.Capped(displayCap),
			Expectancy:         Expectancy(prefix).Expectancy,
		})
	}
	return out
}
