package menu

import (
	"fmt"
	"strings"

	"restaurant/internal/models"
)

const (
	tableHeader = "\n#   | Date       | Time | Name     | Adults | Children | Subtotal "
	tableRow    = "%-3d | %-10s | %-7s | %-10s | %-5d | %-7d | %s %-7d\n"
)

var tableRule = strings.Repeat("-", 71)

// writeTable prints entries as a fixed-width table
func (m *Menu) writeTable(entries []models.Entry) {
	m.println(tableHeader)
	m.println(tableRule)
	for _, e := range entries {
		m.printf(tableRow, e.Position, e.Date, e.Time, e.Name, e.Adults, e.Children, models.Currency, e.Subtotal)
	}
}

// Write errors are ignored: a broken terminal leaves nothing to report to.

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
