package storage

//go:generate mockgen -source=storage.go -destination=mocks/ledger.go -package=mocks Ledger

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/models"
)

var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrNothingToSummarize = errors.New("no reservations to summarize")
)

// PositionError reports a removal outside 1..Length
type PositionError struct {
	Position int
	Length   int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d outside 1..%d", e.Position, e.Length)
}

func (e *PositionError) Unwrap() error {
	return ErrPositionOutOfRange
}

// Ledger defines the ordered reservation collection. Positions are 1-based
// and derived from insertion order, so they shift after a removal.
type Ledger interface {
	// Add appends a reservation. The reservation is trusted to be valid.
	Add(ctx context.Context, reservation models.Reservation) error

	// List returns every reservation in insertion order paired with its position.
	// An empty ledger yields an empty slice.
	List(ctx context.Context) ([]models.Entry, error)

	// RemoveAt removes and returns the reservation at position.
	// Out-of-range positions return ErrPositionOutOfRange and leave the ledger unchanged.
	RemoveAt(ctx context.Context, position int) (models.Reservation, error)

	// Summarize totals adults, children and subtotals.
	// An empty ledger returns ErrNothingToSummarize.
	Summarize(ctx context.Context) (models.Summary, error)

	// Len returns the number of stored reservations.
	Len(ctx context.Context) (int, error)
}
