// Package spectrum models the four-way asset allocation entered on the
// diagnostic result. The allocation is valid only when the four slots add up
// to exactly 100; nothing is normalised or rebalanced automatically.
package spectrum

import (
	"fmt"
	"strings"
)

const (
	MinPercent = 0
	MaxPercent = 100
	Total      = 100
)

// Slot identifies one slider.
type Slot int

const (
	Cash Slot = iota
	Leverage
	HighYield
	Preservation
)

// AllSlots returns the slots in display order.
func AllSlots() []Slot {
	return []Slot{Cash, Leverage, HighYield, Preservation}
}

// Label returns the display name of the slot.
func (s Slot) Label() string {
	switch s {
	case Cash:
		return "现金流"
	case Leverage:
		return "杠杆保障"
	case HighYield:
		return "高收益投资"
	case Preservation:
		return "保本升值"
	default:
		return "未知"
	}
}

// Allocation holds one percentage per slot.
type Allocation struct {
	Cash         int
	Leverage     int
	HighYield    int
	Preservation int
}

// Default returns the starting allocation, which already sums to 100.
func Default() Allocation {
	return Allocation{Cash: 10, Leverage: 20, HighYield: 30, Preservation: 40}
}

// Get returns the percentage for slot s.
func (a Allocation) Get(s Slot) int {
	switch s {
	case Cash:
		return a.Cash
	case Leverage:
		return a.Leverage
	case HighYield:
		return a.HighYield
	case Preservation:
		return a.Preservation
	}
	return 0
}

// Set returns a copy with slot s set to v, clamped to [0,100]. Other slots
// are left untouched.
func (a Allocation) Set(s Slot, v int) Allocation {
	v = clamp(v)
	switch s {
	case Cash:
		a.Cash = v
	case Leverage:
		a.Leverage = v
	case HighYield:
		a.HighYield = v
	case Preservation:
		a.Preservation = v
	}
	return a
}

// Nudge moves slot s by delta, clamped to [0,100].
func (a Allocation) Nudge(s Slot, delta int) Allocation {
	return a.Set(s, a.Get(s)+delta)
}

// Sum returns the total across all four slots.
func (a Allocation) Sum() int {
	return a.Cash + a.Leverage + a.HighYield + a.Preservation
}

// Valid reports whether the allocation sums to exactly 100. The proceed
// action is enabled iff this holds.
func (a Allocation) Valid() bool {
	return a.Sum() == Total
}

// Remaining returns how far the allocation is from 100. Negative means over.
func (a Allocation) Remaining() int {
	return Total - a.Sum()
}

// Summary renders the allocation as plain-text lines for mail bodies.
func (a Allocation) Summary() string {
	var b strings.Builder
	for _, s := range AllSlots() {
		fmt.Fprintf(&b, "%s: %d%%\n", s.Label(), a.Get(s))
	}
	return b.String()
}

func clamp(v int) int {
	if v < MinPercent {
		return MinPercent
	}
	if v > MaxPercent {
		return MaxPercent
	}
	return v
}
