// Package statnorm converts raw stat values into render-ready bar
// descriptors. Everything in this package is pure: identical inputs always
// yield identical outputs, so results are safe to memoize.
package statnorm

import "fmt"

// CapStatus classifies a stat value relative to its cap
type CapStatus string

// Cap statuses
const (
	StatusNormal  CapStatus = "NORMAL"
	StatusAtCap   CapStatus = "AT_CAP"
	StatusOverCap CapStatus = "OVER_CAP"
)

// capTolerance absorbs floating-point rounding when comparing a value
// against its cap
const capTolerance = 0.01

// BarStat is a render-ready stat descriptor
type BarStat struct {
	// ClampedValue is the non-negative value used for bar sizing. The
	// displayed label still carries the true signed value.
	ClampedValue float64 `json:"clampedValue"`
	// PercentOfCap is the bar width in [0, 100]
	PercentOfCap float64 `json:"percentOfCap"`
	// CapStatus drives the bar's color classification
	CapStatus CapStatus `json:"capStatus"`
}

// Normalize converts a raw stat value and its cap into a bar descriptor.
// A cap of zero or less means the stat is uncapped: the bar width is 0 and
// the status is always NORMAL.
func Normalize(value, cap float64) BarStat {
	clamped := value
	if clamped < 0 {
		clamped = 0
	}

	stat := BarStat{
		ClampedValue: clamped,
		CapStatus:    StatusNormal,
	}

	if cap <= 0 {
		return stat
	}

	pct := clamped / cap * 100
	if pct > 100 {
		pct = 100
	}
	stat.PercentOfCap = pct

	switch {
	case value > cap+capTolerance:
		stat.CapStatus = StatusOverCap
	case value >= cap && value < cap+capTolerance:
		stat.CapStatus = StatusAtCap
	}

	return stat
}

// FormatSignedPercent renders the true signed value with one decimal place
// and a trailing percent sign, e.g. "-10.0%"
func FormatSignedPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// MilestoneReached reports whether a percent-offset stat has crossed its
// named display threshold. Cosmetic indicator only.
func MilestoneReached(value, threshold float64) bool {
	return value >= threshold
}
