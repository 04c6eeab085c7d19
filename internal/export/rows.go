// Package export turns a month's transactions into spreadsheet rows and
// writes the XLSX workbook.
package export

import (
	"sort"
	"time"

	"github.com/emmy649/budget/internal/core"
)

const (
	labelIncome  = "Приход"
	labelExpense = "Разход"
	labelWaste   = "Да"
	labelNoWaste = "—"
)

// Header is the fixed first row of every export.
var Header = []string{"Дата", "Тип", "Категория", "Бележка", "Сума", "Излишен"}

// Row is one normalized export line. Date is a real calendar value so the
// serializer can apply date formatting; it is zero when the stored date was
// malformed, which exports as an empty cell.
type Row struct {
	Date     time.Time
	Type     string
	Category string
	Note     string
	Amount   float64
	Wasteful string
}

// BuildRows transforms a month's transactions into export rows sorted
// ascending by date. The wasteful marker is only ever set on expense rows.
func BuildRows(txs []core.Transaction, wasteful map[string]bool) []Row {
	sorted := append([]core.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]Row, 0, len(sorted))
	for _, t := range sorted {
		r := Row{
			Category: t.Category,
			Note:     t.Note,
			Amount:   t.Amount.Levs(),
			Wasteful: labelNoWaste,
		}
		if !t.Date.IsZero() {
			r.Date = t.Date.Time
		}
		if t.Type == core.Income {
			r.Type = labelIncome
		} else {
			r.Type = labelExpense
		}
		if t.Type == core.Expense && wasteful[t.ID] {
			r.Wasteful = labelWaste
		}
		rows = append(rows, r)
	}
	return rows
}
