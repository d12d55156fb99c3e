package menu

import (
	"io"

	"go.uber.org/zap"
	"restaurant/internal/storage"
	"restaurant/internal/validate"
)

// Command identifies a menu action
type Command string

const (
	CommandView   Command = "view"
	CommandMake   Command = "make"
	CommandDelete Command = "delete"
	CommandReport Command = "report"
	CommandExit   Command = "exit"
)

// commandKeys maps the letter typed at the menu to its command
var commandKeys = map[string]Command{
	"a": CommandView,
	"b": CommandMake,
	"c": CommandDelete,
	"d": CommandReport,
	"e": CommandExit,
}

// Conversation steps. stepDone marks a finished conversation.
const (
	stepDone = -1

	stepName     = 1
	stepDate     = 2
	stepTime     = 3
	stepAdults   = 4
	stepChildren = 5

	stepPosition = 1
)

// Menu drives the ledger from line-oriented text input
type Menu struct {
	ledger    storage.Ledger
	validator *validate.Validator
	out       io.Writer
	logger    *zap.Logger
	state     *ConversationState
	done      bool
}

// ConversationState tracks the state of multi-step commands
type ConversationState struct {
	Command Command
	Step    int
	Draft   ReservationDraft
}

// ReservationDraft holds the fields collected so far by the make command
type ReservationDraft struct {
	Name   string
	Date   string
	Time   string
	Adults int
}
