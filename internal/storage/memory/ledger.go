package memory

import (
	"context"
	"sync"

	"restaurant/internal/models"
	"restaurant/internal/storage"
)

// Ledger is an in-memory implementation of storage.Ledger. It lives for the
// lifetime of the process.
type Ledger struct {
	mu           sync.RWMutex
	reservations []models.Reservation
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		reservations: make([]models.Reservation, 0),
	}
}

// Add appends a reservation
func (l *Ledger) Add(ctx context.Context, reservation models.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reservations = append(l.reservations, reservation)
	return nil
}

// List returns all reservations with their 1-based positions
func (l *Ledger) List(ctx context.Context) ([]models.Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]models.Entry, 0, len(l.reservations))
	for i, r := range l.reservations {
		entries = append(entries, models.Entry{
			Position:    i + 1,
			Reservation: r,
		})
	}
	return entries, nil
}

// RemoveAt removes the reservation at a 1-based position
func (l *Ledger) RemoveAt(ctx context.Context, position int) (models.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if position < 1 || position > len(l.reservations) {
		return models.Reservation{}, &storage.PositionError{
			Position: position,
			Length:   len(l.reservations),
		}
	}

	idx := position - 1
	removed := l.reservations[idx]
	l.reservations = append(l.reservations[:idx], l.reservations[idx+1:]...)
	return removed, nil
}

// Summarize totals every stored reservation
func (l *Ledger) Summarize(ctx context.Context) (models.Summary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.reservations) == 0 {
		return models.Summary{}, storage.ErrNothingToSummarize
	}

	var summary models.Summary
	for _, r := range l.reservations {
		summary.TotalAdults += r.Adults
		summary.TotalChildren += r.Children
		summary.GrandTotal += r.Subtotal
	}
	return summary, nil
}

// Len returns the number of stored reservations
func (l *Ledger) Len(ctx context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.reservations), nil
}
