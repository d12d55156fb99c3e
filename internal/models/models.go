package models

import "github.com/google/uuid"

// Per-head rates, in Currency units.
const (
	AdultRate = 500
	ChildRate = 300
)

// Currency is the label printed in front of every amount
const Currency = "PHP"

// Reservation represents a single booking. Values are never mutated after
// NewReservation returns them.
type Reservation struct {
	ID       uuid.UUID
	Name     string
	Date     string // "Jan 02, 2006"
	Time     string // "03:04 PM"
	Adults   int
	Children int
	Subtotal int
}

// Entry pairs a reservation with its current 1-based position in the ledger
type Entry struct {
	Position int
	Reservation
}

// Summary represents the totals across every stored reservation
type Summary struct {
	TotalAdults   int
	TotalChildren int
	GrandTotal    int
}

// Subtotal returns the price of a party at the fixed per-head rates
func Subtotal(adults, children int) int {
	return adults*AdultRate + children*ChildRate
}

// NewReservation builds a reservation from already validated fields and
// computes its subtotal.
func NewReservation(name, date, time string, adults, children int) Reservation {
	return Reservation{
		ID:       uuid.New(),
		Name:     name,
		Date:     date,
		Time:     time,
		Adults:   adults,
		Children: children,
		Subtotal: Subtotal(adults, children),
	}
}
