package analytics

import "github.com/zerojournal/tradepulse/internal/domain/models"

// TotalTurnover sums the charge-allocation basis over a trade set.
func TotalTurnover(trades []models.MatchedTrade) float64 {
	var total float64
	for _, t := range trades {
		total += t.Turnover()
	}
	return total
}

// AllocatedCharge distributes the statement's aggregate charge total to
// one trade, proportional to its share of the turnover of the entire
// unfiltered matched set:
//
//	alloc(t) = totalCharges x turnover(t) / totalTurnover
//
// Applying the full aggregate to a filtered slice would overstate its
// losses; the turnover ratio keeps net P&L additive across any partition
// of the trades. Zero total turnover allocates nothing.
func AllocatedCharge(t models.MatchedTrade, totalCharges, totalTurnover float64) float64 {
	if totalTurnover <= 0 {
		return 0
	}
	return totalCharges * t.Turnover() / totalTurnover
}

// AllocateCharges returns the summed charge allocation for a subset.
// totalTurnover must be the turnover of the unfiltered matched set, not
// of the subset.
func AllocateCharges(subset []models.MatchedTrade, totalCharges, totalTurnover float64) float64 {
	var sum float64
	for _, t := range subset {
		sum += AllocatedCharge(t, totalCharges, totalTurnover)
	}
	return sum
}

// NetPnl is the subset's realized P&L minus its proportional charge share.
func NetPnl(subset []models.MatchedTrade, totalCharges, totalTurnover float64) float64 {
	var gross float64
	for _, t := range subset {
		gross += t.Pnl
	}
	return gross - AllocateCharges(subset, totalCharges, totalTurnover)
}
