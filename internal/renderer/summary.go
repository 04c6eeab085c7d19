package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/emmy649/budget/internal/core"
)

var weekdays = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"}

// SummaryMarkdown renders the full monthly report: totals, the spend
// calendar, per-category sums and the wasteful total.
func SummaryMarkdown(s core.MonthSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Месец %s", s.Month))

	doc.Table(md.TableSet{
		Header: []string{"Приход", "Разход", "Баланс"},
		Rows: [][]string{{
			"+ " + FormatMoney(s.Income.Cents),
			"- " + FormatMoney(s.Expense.Cents),
			FormatMoney(s.Balance.Cents),
		}},
	})

	doc.H2("Календар на разходите")
	doc.Table(md.TableSet{Header: weekdays, Rows: calendarRows(s)})

	doc.H2("Разходи по категории")
	if len(s.ByCategory) == 0 {
		doc.PlainText("Няма разходи за този месец.")
	} else {
		rows := make([][]string, 0, len(s.ByCategory))
		for _, c := range s.ByCategory {
			rows = append(rows, []string{c.Name, FormatMoney(c.Amount.Cents)})
		}
		doc.Table(md.TableSet{Header: []string{"Категория", "Сума"}, Rows: rows})
	}

	doc.PlainText(fmt.Sprintf("Общо излишни разходи за месеца: %s", FormatMoney(s.WastefulTotal.Cents)))

	return doc.String()
}

// calendarRows lays the day buckets out on a Monday-first week grid.
func calendarRows(s core.MonthSummary) [][]string {
	shift := (int(s.Month.First().Weekday()) + 6) % 7

	var rows [][]string
	row := make([]string, 0, 7)
	for i := 0; i < shift; i++ {
		row = append(row, "")
	}
	for _, d := range s.Days {
		cell := fmt.Sprintf("%d", d.Day)
		if d.Expense.Cents > 0 {
			cell = fmt.Sprintf("%d: %s", d.Day, FormatMoney(d.Expense.Cents))
		}
		row = append(row, cell)
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]string, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return rows
}
