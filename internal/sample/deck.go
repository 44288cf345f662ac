package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/nkiryanov/pointseed/internal/apperrors"
	"github.com/nkiryanov/pointseed/internal/pools"
)

// Deck draws taxonomy shops without replacement, so one run never repeats a merchant name
type Deck struct {
	shops []pools.Shop
}

func NewDeck(shops []pools.Shop) *Deck {
	return &Deck{shops: shops}
}

func (d *Deck) Len() int {
	return len(d.shops)
}

// Draw returns n distinct shops in random order
func (d *Deck) Draw(rng *rand.Rand, n int) ([]pools.Shop, error) {
	if n > len(d.shops) {
		return nil, fmt.Errorf("%w: want %d, have %d", apperrors.ErrTaxonomyExhausted, n, len(d.shops))
	}

	drawn := make([]pools.Shop, 0, n)
	for _, i := range rng.Perm(len(d.shops))[:n] {
		drawn = append(drawn, d.shops[i])
	}

	return drawn, nil
}

// Take returns the first n shops in taxonomy order
func (d *Deck) Take(n int) ([]pools.Shop, error) {
	if n > len(d.shops) {
		return nil, fmt.Errorf("%w: want %d, have %d", apperrors.ErrTaxonomyExhausted, n, len(d.shops))
	}

	return append([]pools.Shop(nil), d.shops[:n]...), nil
}
