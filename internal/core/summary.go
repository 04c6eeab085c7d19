package core

import (
	"fmt"
	"sort"
)

type (
	// CategoryAmount is an expense total aggregated by category name.
	CategoryAmount struct {
		Name   string
		Amount Money
	}

	// DayBucket accumulates the expenses of one calendar day. Label carries
	// the DD.MM form the calendar view renders.
	DayBucket struct {
		Day     int
		Label   string
		Expense Money
	}

	// MonthSummary is the full derived view for one month: totals, the daily
	// spend buckets, per-category sums sorted descending, and the total of
	// expenses flagged as wasteful.
	MonthSummary struct {
		Month         Month
		Income        Money
		Expense       Money
		Balance       Money
		Days          []DayBucket
		ByCategory    []CategoryAmount
		WastefulTotal Money
	}
)

// MonthWindow returns the transactions whose date falls inside the month,
// preserving store order.
func MonthWindow(txs []Transaction, m Month) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if m.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// Summarize derives the monthly view from the transaction list and the set of
// wasteful ids. It is a pure function: callers re-invoke it whenever the
// store or the month cursor changes.
//
// Invariants it maintains, for any input:
//   - Balance = Income - Expense
//   - the day buckets sum to Expense, and so do the category sums
//   - ByCategory is sorted non-increasing by amount, ties keeping first
//     encounter order
//   - income never contributes to day buckets or category sums
//   - flags on ids outside the window (or no longer in the list) are inert
func Summarize(txs []Transaction, m Month, wasteful map[string]bool) MonthSummary {
	s := MonthSummary{Month: m, Days: make([]DayBucket, m.Days())}
	for i := range s.Days {
		s.Days[i] = DayBucket{
			Day:   i + 1,
			Label: fmt.Sprintf("%02d.%02d", i+1, int(m.Month)),
		}
	}

	catSums := make(map[string]int64)
	var catOrder []string

	for _, t := range MonthWindow(txs, m) {
		switch t.Type {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expense = s.Expense.Add(t.Amount)
			if idx := t.Date.Day() - 1; idx >= 0 && idx < len(s.Days) {
				s.Days[idx].Expense = s.Days[idx].Expense.Add(t.Amount)
			}
			if _, seen := catSums[t.Category]; !seen {
				catOrder = append(catOrder, t.Category)
			}
			catSums[t.Category] += t.Amount.Cents
			if wasteful[t.ID] {
				s.WastefulTotal = s.WastefulTotal.Add(t.Amount)
			}
		}
	}

	s.Balance = s.Income.Sub(s.Expense)

	s.ByCategory = make([]CategoryAmount, 0, len(catOrder))
	for _, name := range catOrder {
		s.ByCategory = append(s.ByCategory, CategoryAmount{Name: name, Amount: Money{Cents: catSums[name]}})
	}
	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Amount.Cents > s.ByCategory[j].Amount.Cents
	})

	return s
}

// SortForDisplay orders a month's transactions the way the record table shows
// them: income before expense, then chronologically. The input is not
// modified.
func SortForDisplay(txs []Transaction) []Transaction {
	out := append([]Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type == Income
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
