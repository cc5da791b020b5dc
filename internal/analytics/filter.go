package analytics

import (
	"time"

	"github.com/zerojournal/tradepulse/internal/domain/models"
)

// Filter is a pure trade-level predicate applied to raw tradebook rows
// before matching. Matching is rebuilt from scratch for every filter so
// that all derived metrics stay mutually consistent.
type Filter struct {
	From    *time.Time
	To      *time.Time
	Symbols []string // empty selects all symbols
	Sectors []string // empty selects all sectors; needs a sector mapping
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil && len(f.Symbols) == 0 && len(f.Sectors) == 0
}

// Apply returns the rows the filter selects. The sectors argument maps
// symbol to sector name; symbols absent from the map count as "Unknown"
// for sector filtering.
func (f Filter) Apply(rows []models.TradeRow, sectors map[string]string) []models.TradeRow {
	if f.IsZero() {
		return rows
	}

	symbolSet := toSet(f.Symbols)
	sectorSet := toSet(f.Sectors)

	var out []models.TradeRow
	for _, r := range rows {
		if f.From != nil && r.TradeDate.Before(*f.From) {
			continue
		}
		if f.To != nil && r.TradeDate.After(*f.To) {
			continue
		}
		if len(symbolSet) > 0 {
			if _, ok := symbolSet[r.Symbol]; !ok {
				continue
			}
		}
		if len(sectorSet) > 0 {
			sector, ok := sectors[r.Symbol]
			if !ok {
				sector = "Unknown"
			}
			if _, ok := sectorSet[sector]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// ApplyPnl filters statement rows by the same symbol and sector
// predicates. Statement rows carry no dates, so the date bounds do not
// apply to them.
func (f Filter) ApplyPnl(rows []models.PnlRow, sectors map[string]string) []models.PnlRow {
	if len(f.Symbols) == 0 && len(f.Sectors) == 0 {
		return rows
	}

	symbolSet := toSet(f.Symbols)
	sectorSet := toSet(f.Sectors)

	var out []models.PnlRow
	for _, r := range rows {
		if len(symbolSet) > 0 {
			if _, ok := symbolSet[r.Symbol]; !ok {
				continue
			}
		}
		if len(sectorSet) > 0 {
			sector, ok := sectors[r.Symbol]
			if !ok {
				sector = "Unknown"
			}
			if _, ok := sectorSet[sector]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func toSet(vals []string) map[string]struct{} {
	if len(vals) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}
