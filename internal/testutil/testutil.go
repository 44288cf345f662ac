package testutil

import (
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Now is the reference instant tests freeze the clock at
var Now = time.Date(2025, 10, 19, 10, 30, 0, 0, time.UTC)

// Seeded source, so a failing test can be replayed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// ChaCha8 source; it also implements io.Reader which uuid generation needs
func NewSource(seed uint64) *rand.ChaCha8 {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.NewChaCha8(key)
}

func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
