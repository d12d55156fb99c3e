package menu

import (
	"io"

	"go.uber.org/zap"
	"restaurant/internal/storage"
	"restaurant/internal/validate"
)

// New creates a menu writing to out
func New(ledger storage.Ledger, validator *validate.Validator, out io.Writer, logger *zap.Logger) *Menu {
	return &Menu{
		ledger:    ledger,
		validator: validator,
		out:       out,
		logger:    logger,
	}
}

// Done reports whether the exit command has been chosen
func (m *Menu) Done() bool {
	return m.done
}
