// Package sample draws single field values from reference pools and fixed
// distributions. Every draw goes through the injected random source.
package sample

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// AmountRange is an inclusive range of minor currency units
type AmountRange struct {
	Min int64
	Max int64
}

// Transaction sizes: small purchases dominate, large ones form a thin tail
var amounts = MustWeighted(
	Choice[AmountRange]{Value: AmountRange{Min: 500, Max: 2000}, Weight: 0.5},
	Choice[AmountRange]{Value: AmountRange{Min: 2000, Max: 5000}, Weight: 0.3},
	Choice[AmountRange]{Value: AmountRange{Min: 5000, Max: 10000}, Weight: 0.15},
	Choice[AmountRange]{Value: AmountRange{Min: 10000, Max: 50000}, Weight: 0.05},
)

type Sampler struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Rand exposes the source for helpers that take it directly (Weighted, Deck)
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

// From picks uniformly. The pool must not be empty.
func From[T any](s *Sampler, pool []T) T {
	return pool[s.rng.IntN(len(pool))]
}

// Name joins an independently drawn surname and given name
func (s *Sampler) Name(surnames, givenNames []string) string {
	return From(s, surnames) + From(s, givenNames)
}

// IntRange is uniform over [lo, hi]
func (s *Sampler) IntRange(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Sampler) Amount() int64 {
	r := amounts.Pick(s.rng)
	return r.Min + s.rng.Int64N(r.Max-r.Min+1)
}

// Bool is true with probability p
func (s *Sampler) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// Within goes back from now by independently uniform days, hours, minutes and seconds
func (s *Sampler) Within(now time.Time, days int) time.Time {
	back := time.Duration(s.IntRange(0, days))*24*time.Hour +
		time.Duration(s.IntRange(0, 23))*time.Hour +
		time.Duration(s.IntRange(0, 59))*time.Minute +
		time.Duration(s.IntRange(0, 59))*time.Second

	return now.Add(-back).Truncate(time.Second)
}

// InMonth picks a whole minute in [firstDay, lastDay] of month's month, between fromHour and toHour inclusive
func (s *Sampler) InMonth(month time.Time, firstDay, lastDay, fromHour, toHour int) time.Time {
	return time.Date(month.Year(), month.Month(),
		s.IntRange(firstDay, lastDay), s.IntRange(fromHour, toHour), s.IntRange(0, 59), 0, 0,
		month.Location())
}

func (s *Sampler) Avatar() string {
	return fmt.Sprintf("https://api.multiavatar.com/%d.png", s.IntRange(1, 100))
}

// Percent renders a whole percentage like "37%"
func (s *Sampler) Percent(lo, hi int) string {
	return fmt.Sprintf("%d%%", s.IntRange(lo, hi))
}
