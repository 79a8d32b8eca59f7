package domain

import (
	"math"
	"time"
)

// Campaign represents a fundraising goal with a running total.
// Target and Raised are stored in minor currency units.
type Campaign struct {
	ID          string
	Title       string
	Category    string
	Description string
	Target      int64
	Raised      int64
	Creator     string
	CreatedAt   time.Time
}

// Progress reports how much of the target has been raised, as a
// percentage rounded to one decimal place. Target is validated as
// strictly positive at creation, so the division is always defined.
func (c Campaign) Progress() float64 {
	if c.Target <= 0 {
		return 0
	}
	pct := float64(c.Raised) / float64(c.Target) * 100
	return math.Round(pct*10) / 10
}
