package models

import (
	"fmt"
	"math"
)

// Ratio is the result of a gross-profit-style division that can be
// undefined on the upside (no losing leg at all). Modeling the "infinite"
// case as an explicit tag keeps it out of downstream arithmetic, where a
// literal +Inf float would propagate silently.
type Ratio struct {
	Value     float64
	Undefined bool // true when there is nothing on the losing side
}

// FiniteRatio builds a defined ratio value.
func FiniteRatio(v float64) Ratio { return Ratio{Value: v} }

// UndefinedRatio builds the "infinite" sentinel (wins with zero losses).
func UndefinedRatio() Ratio { return Ratio{Undefined: true} }

// Capped returns the value clamped to cap for charting. The raw ratio is
// preserved on the struct; this transform is non-destructive.
func (r Ratio) Capped(cap float64) float64 {
	if r.Undefined {
		return cap
	}
	return math.Min(r.Value, cap)
}

// String renders the ratio for logs and tooltips.
func (r Ratio) String() string {
	if r.Undefined {
		return "inf"
	}
	return fmt.Sprintf("%.2f", r.Value)
}
