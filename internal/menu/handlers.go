package menu

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// HandleLine processes a single line of input
func (m *Menu) HandleLine(ctx context.Context, line string) {
	// Recover from panics so one bad line cannot end the session
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Recovered from panic in HandleLine", zap.Any("panic", r))
			m.state = nil
			m.println("An error occurred while processing your request. Please try again.")
		}
	}()

	if state := m.state; state != nil {
		if state.Step != stepDone {
			m.handleConversation(ctx, line, state)
			return
		}
		m.state = nil
	}

	command, ok := commandKeys[strings.ToLower(line)]
	if !ok {
		m.println("Invalid Input: Enter a letter between 'a' and 'e'.")
		return
	}

	m.logger.Debug("Menu command selected", zap.String("command", string(command)))

	switch command {
	case CommandView:
		m.handleView(ctx)
	case CommandMake:
		m.handleMakeStart()
	case CommandDelete:
		m.handleDeleteStart(ctx)
	case CommandReport:
		m.handleReport(ctx)
	case CommandExit:
		m.handleExit()
	}
}

// prompt writes what the menu expects next
func (m *Menu) prompt() {
	if m.state == nil || m.state.Step == stepDone {
		m.println(menuText)
		m.print("Choose an option (a-e): ")
		return
	}

	switch m.state.Command {
	case CommandMake:
		m.print(makePrompts[m.state.Step])
	case CommandDelete:
		m.print("Enter the reservation number to delete: ")
	}
}
