package repository

import (
	"github.com/nkiryanov/pointseed/internal/models"
)

// DatasetWriter persists a generated dataset
type DatasetWriter interface {
	// Save writes the whole dataset and returns where it went.
	// On error nothing usable is left behind.
	Save(ds models.Dataset) (location string, err error)
}
