package menu

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"restaurant/internal/models"
	"restaurant/internal/storage"
)

const menuText = "\nSystem Menu \n" + `a. View all Reservations
b. Make Reservation
c. Delete Reservation
d. Generate Report
e. Exit`

var makePrompts = map[int]string{
	stepName:     "Enter name: ",
	stepDate:     "Enter date of reservation (e.g., Oct 25, 2025): ",
	stepTime:     "Enter time of reservation (e.g., 11:11 AM): ",
	stepAdults:   "Enter number of adults (at least 1): ",
	stepChildren: "Enter number of children (can be 0): ",
}

// handleView lists every reservation
func (m *Menu) handleView(ctx context.Context) {
	entries, err := m.ledger.List(ctx)
	if err != nil {
		m.logger.Error("Failed to list reservations", zap.Error(err))
		m.printf("Error: %v\n", err)
		return
	}

	if len(entries) == 0 {
		m.println("No reservations have been made.")
		return
	}

	m.writeTable(entries)
}

// handleMakeStart initiates the make reservation conversation
func (m *Menu) handleMakeStart() {
	m.state = &ConversationState{
		Command: CommandMake,
		Step:    stepName,
	}
	m.println("\n----- Make a Reservation -----")
}

// handleDeleteStart shows the reservations and asks which one to delete
func (m *Menu) handleDeleteStart(ctx context.Context) {
	n, err := m.ledger.Len(ctx)
	if err != nil {
		m.logger.Error("Failed to count reservations", zap.Error(err))
		m.printf("Error: %v\n", err)
		return
	}

	if n == 0 {
		m.println("No reservations to delete.")
		return
	}

	m.handleView(ctx)
	m.state = &ConversationState{
		Command: CommandDelete,
		Step:    stepPosition,
	}
}

// handleReport shows the reservations followed by their totals
func (m *Menu) handleReport(ctx context.Context) {
	summary, err := m.ledger.Summarize(ctx)
	if errors.Is(err, storage.ErrNothingToSummarize) {
		m.println("No reservations to report.")
		return
	}
	if err != nil {
		m.logger.Error("Failed to summarize reservations", zap.Error(err))
		m.printf("Error: %v\n", err)
		return
	}

	m.handleView(ctx)

	m.printf("\nTotal number of Adults: %d\n", summary.TotalAdults)
	m.printf("Total number of Children: %d\n", summary.TotalChildren)
	m.printf("Grand Total: %s\n", formatAmount(summary.GrandTotal))
}

// handleExit ends the session
func (m *Menu) handleExit() {
	m.println("Exiting the reservation system. Thank you!")
	m.done = true
	m.logger.Info("Menu exit requested")
}

func formatAmount(amount int) string {
	return fmt.Sprintf("%s %d", models.Currency, amount)
}
