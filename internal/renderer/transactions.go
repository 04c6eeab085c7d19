package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/emmy649/budget/internal/core"
)

// TransactionsMarkdown renders a month's records as a table, income first,
// matching the record view of the ledger. The id column is what rm and
// waste take as their argument.
func TransactionsMarkdown(m core.Month, txs []core.Transaction, wasteful map[string]bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Записи за %s", m))

	if len(txs) == 0 {
		doc.PlainText("Няма записи през този месец.")
		return doc.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		typeLabel := "Разход"
		if t.Type == core.Income {
			typeLabel = "Приход"
		}
		note := t.Note
		if note == "" {
			note = "—"
		}
		waste := "—"
		if t.Type == core.Expense && wasteful[t.ID] {
			waste = "Да"
		}
		rows = append(rows, []string{
			t.Date.String(),
			typeLabel,
			t.Category,
			note,
			FormatMoney(t.Amount.Cents),
			waste,
			t.ID,
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Дата", "Тип", "Категория", "Бележка", "Сума", "Излишен", "ID"},
		Rows:   rows,
	})

	return doc.String()
}
