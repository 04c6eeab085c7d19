// Package renderer turns derived monthly views into markdown for the
// terminal.
package renderer

import (
	"fmt"

	money "github.com/Rhymond/go-money"
)

// FormatMoney renders cents as a lev amount with the currency grapheme,
// e.g. "25.50 лв".
func FormatMoney(cents int64) string {
	m := money.New(cents, money.BGN)
	return fmt.Sprintf("%.2f %s", m.AsMajorUnits(), m.Currency().Grapheme)
}
