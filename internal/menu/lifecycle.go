package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Run reads input line by line until the exit command, the end of input,
// or cancellation of ctx.
func (m *Menu) Run(ctx context.Context, in io.Reader) error {
	m.logger.Info("Reservation menu started")

	scanner := bufio.NewScanner(in)
	for !m.done {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.prompt()
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			m.println("")
			m.logger.Info("Input closed, stopping menu")
			return nil
		}

		m.HandleLine(ctx, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	return nil
}
