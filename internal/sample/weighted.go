package sample

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/nkiryanov/pointseed/internal/apperrors"
)

type Choice[T any] struct {
	Value  T
	Weight float64
}

// Weighted picks values in proportion to their weights.
// Weights need not sum to one.
type Weighted[T any] struct {
	values     []T
	cumulative []float64
}

func NewWeighted[T any](choices ...Choice[T]) (*Weighted[T], error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", apperrors.ErrInvalidWeights)
	}

	w := &Weighted[T]{
		values:     make([]T, 0, len(choices)),
		cumulative: make([]float64, 0, len(choices)),
	}

	var total float64
	for _, c := range choices {
		if !(c.Weight > 0) {
			return nil, fmt.Errorf("%w: weight %v for %v", apperrors.ErrInvalidWeights, c.Weight, c.Value)
		}
		total += c.Weight
		w.values = append(w.values, c.Value)
		w.cumulative = append(w.cumulative, total)
	}

	return w, nil
}

// MustWeighted is NewWeighted for fixed tables known to be valid
func MustWeighted[T any](choices ...Choice[T]) *Weighted[T] {
	w, err := NewWeighted(choices...)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Weighted[T]) Pick(rng *rand.Rand) T {
	x := rng.Float64() * w.cumulative[len(w.cumulative)-1]
	i := sort.Search(len(w.cumulative), func(i int) bool { return x < w.cumulative[i] })

	// Float rounding may push x onto the last boundary
	if i == len(w.values) {
		i--
	}

	return w.values[i]
}
