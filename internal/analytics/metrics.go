package analytics

import (
	"sort"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// WinRate is the percentage of matched trades that closed with positive
// P&L. Returns 0 for an empty set, never NaN.
func WinRate(trades []models.MatchedTrade) float64 {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.IsWin() {
			wins++
		}
	}
	return float64(wins) / float64(len(trades)) * 100
}

// GrossProfitLoss splits the set into summed winner P&L and the absolute
// value of summed loser P&L.
func GrossProfitLoss(trades []models.MatchedTrade) (profit, loss float64) {
	for _, t := range trades {
		switch {
		case t.Pnl > 0:
			profit += t.Pnl
		case t.Pnl < 0:
			loss += -t.Pnl
		}
	}
	return profit, loss
}

// ProfitFactor is gross profit over gross loss. With no losers the result
// is the undefined (infinite) sentinel when there is any profit, and 0.0
// when there is neither.
func ProfitFactor(trades []models.MatchedTrade) models.Ratio {
	profit, loss := GrossProfitLoss(trades)
	if loss == 0 {
		if profit > 0 {
			return models.UndefinedRatio()
		}
		return models.FiniteRatio(0)
	}
	return models.FiniteRatio(profit / loss)
}

// Expectancy decomposes a trade set into win rate, average win, average
// loss (absolute) and the expected P&L per trade:
//
//	expectancy = winRate x avgWin - lossRate x avgLoss
//
// An empty set yields all zeros.
func Expectancy(trades []models.MatchedTrade) models.ExpectancyStats {
	s := models.ExpectancyStats{Trades: len(trades)}
	if len(trades) == 0 {
		return s
	}

	var winSum, lossSum float64
	for _, t := range trades {
		switch {
		case t.Pnl > 0:
			s.Wins++
			winSum += t.Pnl
		case t.Pnl < 0:
			s.Losses++
			lossSum += -t.Pnl
		}
	}

	if s.Wins > 0 {
		s.AvgWin = winSum / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = lossSum / float64(s.Losses)
	}

	winRate := float64(s.Wins) / float64(len(trades))
	lossRate := float64(s.Losses) / float64(len(trades))
	s.WinRate = winRate * 100
	s.Expectancy = winRate*s.AvgWin - lossRate*s.AvgLoss
	return s
}

// RiskReward is average win over average loss (absolute). Same
// zero-handling as ProfitFactor: undefined with wins and no losses,
// 0.0 with neither.
func RiskReward(trades []models.MatchedTrade) models.Ratio {
	s := Expectancy(trades)
	if s.AvgLoss == 0 {
		if s.AvgWin > 0 {
			return models.UndefinedRatio()
		}
		return models.FiniteRatio(0)
	}
	return models.FiniteRatio(s.AvgWin / s.AvgLoss)
}

// Streaks scans chronologically ordered trades and tracks run lengths of
// same-sign P&L. Break-even trades end the active streak without starting
// a new one.
func Streaks(trades []models.MatchedTrade) models.StreakStats {
	var s models.StreakStats
	run := 0
	runType := ""

	for _, t := range trades {
		var kind string
		switch {
		case t.Pnl > 0:
			kind = "win"
		case t.Pnl < 0:
			kind = "loss"
		default:
			run, runType = 0, ""
			continue
		}

		if kind == runType {
			run++
		} else {
			run, runType = 1, kind
		}

		if runType == "win" && run > s.MaxWinStreak {
			s.MaxWinStreak = run
		}
		if runType == "loss" && run > s.MaxLossStreak {
			s.MaxLossStreak = run
		}
	}

	s.Current = run
	s.CurrentType = runType
	return s
}

// AvgHoldingDays is the quantity-weighted mean holding period of the
// matched set, in days.
func AvgHoldingDays(trades []models.MatchedTrade) float64 {
	var days, qty int64
	for _, t := range trades {
		days += int64(t.HoldingDays) * t.Quantity
		qty += t.Quantity
	}
	if qty == 0 {
		return 0
	}
	return float64(days) / float64(qty)
}

// WinRateBySymbol ranks symbols by the win rate of their matched trades,
// descending, symbol name breaking ties.
func WinRateBySymbol(trades []models.MatchedTrade) []models.SymbolValue {
	return rankBySymbol(trades, func(ts []models.MatchedTrade) float64 {
		return WinRate(ts)
	})
}

// HoldingDaysBySymbol ranks symbols by their quantity-weighted average
// holding period, descending.
func HoldingDaysBySymbol(trades []models.MatchedTrade) []models.SymbolValue {
	return rankBySymbol(trades, AvgHoldingDays)
}

func rankBySymbol(trades []models.MatchedTrade, stat func([]models.MatchedTrade) float64) []models.SymbolValue {
	grouped := make(map[string][]models.MatchedTrade)
	for _, t := range trades {
		grouped[t.Symbol] = append(grouped[t.Symbol], t)
	}

	out := make([]models.SymbolValue, 0, len(grouped))
	for sym, ts := range grouped {
		out = append(out, models.SymbolValue{Symbol: sym, Value: stat(ts)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// DurationDistribution bins matched trades by holding period, carrying
// both the trade count and the matched quantity per bin.
func DurationDistribution(trades []models.MatchedTrade) []models.HoldingCount {
	byDays := make(map[int]*models.HoldingCount)
	for _, t := range trades {
		bin, ok := byDays[t.HoldingDays]
		if !ok {
			bin = &models.HoldingCount{Days: t.HoldingDays}
			byDays[t.HoldingDays] = bin
		}
		bin.Trades++
		bin.Quantity += t.Quantity
	}

	out := make([]models.HoldingCount, 0, len(byDays))
	for _, bin := range byDays {
		out = append(out, *bin)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}
