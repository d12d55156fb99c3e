package menu

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"restaurant/internal/models"
	"restaurant/internal/storage"
	"restaurant/internal/validate"
)

// handleConversation processes multi-step conversations
func (m *Menu) handleConversation(ctx context.Context, line string, state *ConversationState) {
	switch state.Command {
	case CommandMake:
		m.handleMakeConversation(ctx, line, state)
	case CommandDelete:
		m.handleDeleteConversation(ctx, line, state)
	}

	// Clean up completed conversations
	if state.Step == stepDone {
		m.state = nil
	}
}

// handleMakeConversation collects one reservation field per line. Invalid
// input keeps the conversation on the same step.
func (m *Menu) handleMakeConversation(ctx context.Context, line string, state *ConversationState) {
	switch state.Step {
	case stepName:
		name, err := m.validator.ParseNonEmptyText(line)
		if err != nil {
			m.println("Enter a valid string input. Name must not be blank")
			return
		}
		state.Draft.Name = name
		state.Step = stepDate

	case stepDate:
		date, err := m.validator.ParseFutureDate(line)
		if errors.Is(err, validate.ErrDateNotInFuture) {
			m.println("The reservation date must be at least one day in advance")
			return
		}
		if err != nil {
			m.println("Enter a valid date format. Date format: 'MMM DD, YYYY' (Oct 25, 2025).")
			return
		}
		state.Draft.Date = date
		state.Step = stepTime

	case stepTime:
		t, err := m.validator.ParseTimeOfDay(line)
		if err != nil {
			m.println("Enter a valid time format. Time format: 'HH:MM AM/PM' (11:11 AM).")
			return
		}
		state.Draft.Time = t
		state.Step = stepAdults

	case stepAdults:
		adults, err := m.validator.ParseInteger(line, false)
		if err != nil {
			m.println("Invalid Input: Please enter a valid integer.")
			return
		}
		state.Draft.Adults = adults
		state.Step = stepChildren

	case stepChildren:
		children, err := m.validator.ParseInteger(line, true)
		if err != nil {
			m.println("Invalid Input: Please enter a valid integer.")
			return
		}

		d := state.Draft
		reservation := models.NewReservation(d.Name, d.Date, d.Time, d.Adults, children)
		if err := m.ledger.Add(ctx, reservation); err != nil {
			m.logger.Error("Failed to add reservation", zap.Error(err))
			m.printf("Error creating reservation: %v\n", err)
		} else {
			m.logger.Info("Reservation created",
				zap.Stringer("reservation_id", reservation.ID),
				zap.String("name", reservation.Name),
				zap.String("date", reservation.Date),
				zap.String("time", reservation.Time),
				zap.Int("adults", reservation.Adults),
				zap.Int("children", reservation.Children),
				zap.Int("subtotal", reservation.Subtotal),
			)
			m.println("Reservation made successfully!")
		}

		state.Step = stepDone
	}
}

// handleDeleteConversation removes the reservation at the entered position
func (m *Menu) handleDeleteConversation(ctx context.Context, line string, state *ConversationState) {
	position, err := m.validator.ParseInteger(line, false)
	if err != nil {
		m.println("Invalid Input: Please enter a valid integer.")
		return
	}

	removed, err := m.ledger.RemoveAt(ctx, position)
	switch {
	case errors.Is(err, storage.ErrPositionOutOfRange):
		m.logger.Debug("Rejected reservation removal", zap.Error(err))
		m.println("Invalid reservation number.")
	case err != nil:
		m.logger.Error("Failed to remove reservation", zap.Error(err), zap.Int("position", position))
		m.printf("Error deleting reservation: %v\n", err)
	default:
		m.logger.Info("Reservation deleted",
			zap.Stringer("reservation_id", removed.ID),
			zap.Int("position", position),
		)
		m.printf("Deleted reservation: %s on %s at %s\n", removed.Name, removed.Date, removed.Time)
	}

	state.Step = stepDone
}
