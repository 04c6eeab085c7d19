// Package services orchestrates the stores behind the presentation layer:
// creation-time category checks, derived monthly views, and export.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emmy649/budget/internal/core"
	"github.com/emmy649/budget/internal/store"
)

// ErrUnknownCategory is returned when a transaction names a category that is
// not selectable at creation time. Existing transactions keep their category
// even if it is removed later; the check only guards new records.
var ErrUnknownCategory = errors.New("unknown category")

// BudgetService ties the transaction store, the category registry and the
// wasteful-flag set together.
type BudgetService struct {
	tx    *store.TransactionStore
	cats  *store.CategoryRegistry
	waste *store.WastefulSet
}

func NewBudgetService(tx *store.TransactionStore, cats *store.CategoryRegistry, waste *store.WastefulSet) *BudgetService {
	return &BudgetService{tx: tx, cats: cats, waste: waste}
}

// AddTransaction parses and validates the raw form values and appends the
// record. Income draws from the fixed category set, expense from the
// registry as it stands right now.
func (s *BudgetService) AddTransaction(ctx context.Context, typ core.TxType, amount, category string, date core.Date, note string) (core.Transaction, error) {
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.Transaction{}, err
	}
	switch typ {
	case core.Income:
		if !core.IsIncomeCategory(category) {
			return core.Transaction{}, fmt.Errorf("%w: %q is not an income category", ErrUnknownCategory, category)
		}
	case core.Expense:
		if !s.cats.Has(category) {
			return core.Transaction{}, fmt.Errorf("%w: %q is not in the registry", ErrUnknownCategory, category)
		}
	default:
		return core.Transaction{}, core.ErrInvalidType
	}
	return s.tx.Add(ctx, core.Transaction{
		Type:     typ,
		Amount:   core.Money{Cents: cents},
		Category: category,
		Date:     date,
		Note:     note,
	})
}

// RemoveTransaction deletes by id; absent ids are a no-op. The wasteful flag,
// if any, stays behind as an inert entry until pruned.
func (s *BudgetService) RemoveTransaction(ctx context.Context, id string) error {
	return s.tx.Remove(ctx, id)
}

// Transactions returns the full collection, newest first.
func (s *BudgetService) Transactions() []core.Transaction {
	return s.tx.All()
}

// MonthTransactions returns the month window in display order: income first,
// then chronologically.
func (s *BudgetService) MonthTransactions(m core.Month) []core.Transaction {
	return core.SortForDisplay(core.MonthWindow(s.tx.All(), m))
}

// Summary recomputes the derived monthly view. There is no caching: the
// aggregator is pure and is simply re-invoked when inputs change.
func (s *BudgetService) Summary(m core.Month) core.MonthSummary {
	return core.Summarize(s.tx.All(), m, s.waste.Members())
}

// ToggleWasteful flips the wasteful flag on a transaction id.
func (s *BudgetService) ToggleWasteful(ctx context.Context, id string) error {
	return s.waste.Toggle(ctx, id)
}

// IsWasteful reports whether id is currently flagged.
func (s *BudgetService) IsWasteful(id string) bool {
	return s.waste.Has(id)
}

// WastefulIDs exposes the flag set for the row builder.
func (s *BudgetService) WastefulIDs() map[string]bool {
	return s.waste.Members()
}

// PruneWasteful drops flags pointing at deleted transactions and reports how
// many were removed.
func (s *BudgetService) PruneWasteful(ctx context.Context) (int, error) {
	live := make(map[string]bool, s.tx.Len())
	for _, t := range s.tx.All() {
		live[t.ID] = true
	}
	return s.waste.Prune(ctx, live)
}

// Categories returns the expense category registry in order.
func (s *BudgetService) Categories() []string {
	return s.cats.Names()
}

// AddCategory adds an expense category; empty and duplicate names are
// silently ignored.
func (s *BudgetService) AddCategory(ctx context.Context, name string) error {
	return s.cats.Add(ctx, name)
}

// RemoveCategory removes an expense category (never the last one) and
// returns the fallback selection for consumers pointing at the removed name.
func (s *BudgetService) RemoveCategory(ctx context.Context, name string) (string, error) {
	if err := s.cats.Remove(ctx, name); err != nil {
		return "", err
	}
	return s.cats.First(), nil
}
