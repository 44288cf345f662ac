// Package points holds the one business rule of the fixtures and the ledger
// aggregate built from it.
package points

import (
	"github.com/nkiryanov/pointseed/internal/models"
)

// MinorUnitsPerPoint: one point per whole major currency unit spent
const MinorUnitsPerPoint = 100

// Compute truncates: 4999 -> 49, 100 -> 1, 99 -> 0.
// Amounts are never negative, so integer division is the floor.
func Compute(amount int64) int64 {
	return amount / MinorUnitsPerPoint
}

// Ledger aggregates balances per user and keeps users in first-seen order
type Ledger struct {
	order  []string
	byUser map[string]*models.UserPointsBalance
}

func NewLedger() *Ledger {
	return &Ledger{byUser: make(map[string]*models.UserPointsBalance)}
}

// Open registers a zero balance; opening twice is a no-op
func (l *Ledger) Open(userID string) {
	l.get(userID)
}

// Credit adds earned points to the user's balance, opening it if needed
func (l *Ledger) Credit(userID string, points int64) {
	b := l.get(userID)
	b.Available += points
	b.TotalEarned += points
}

func (l *Ledger) Len() int {
	return len(l.order)
}

// Balances copies the aggregate out in first-seen order
func (l *Ledger) Balances() []models.UserPointsBalance {
	out := make([]models.UserPointsBalance, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.byUser[id])
	}
	return out
}

func (l *Ledger) get(userID string) *models.UserPointsBalance {
	b, ok := l.byUser[userID]
	if !ok {
		b = &models.UserPointsBalance{UserID: userID}
		l.byUser[userID] = b
		l.order = append(l.order, userID)
	}
	return b
}
