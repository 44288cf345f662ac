package apperrors

import (
	"errors"
)

var (
	ErrUnknownProfile = errors.New("unknown fixture profile")

	ErrEmptyPool         = errors.New("reference pool is empty")
	ErrInvalidWeights    = errors.New("weighted choice needs at least one positive weight")
	ErrTaxonomyExhausted = errors.New("merchant taxonomy has fewer entries than requested")

	ErrInconsistentDataset = errors.New("generated dataset is inconsistent")
)
