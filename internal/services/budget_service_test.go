package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emmy649/budget/internal/core"
	"github.com/emmy649/budget/internal/kv"
	"github.com/emmy649/budget/internal/store"
)

func newTestService(t *testing.T) *BudgetService {
	t.Helper()
	ctx := context.Background()
	gw := store.NewGateway(kv.NewMemoryStore(0))
	return NewBudgetService(
		store.NewTransactionStore(ctx, gw),
		store.NewCategoryRegistry(ctx, gw),
		store.NewWastefulSet(ctx, gw),
	)
}

func TestAddTransactionParsesAmount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	got, err := svc.AddTransaction(ctx, core.Expense, "25,50", "Храна", core.NewDate(2025, 3, 14), "обяд")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.Amount.Cents != 2550 {
		t.Fatalf("expected 2550 cents, got %d", got.Amount.Cents)
	}

	for _, amount := range []string{"", "0", "-5", "abc"} {
		if _, err := svc.AddTransaction(ctx, core.Expense, amount, "Храна", core.NewDate(2025, 3, 14), ""); !errors.Is(err, core.ErrInvalidAmount) {
			t.Fatalf("amount %q expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestAddTransactionCategoryChecks(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// Income draws from the fixed set, not the registry.
	if _, err := svc.AddTransaction(ctx, core.Income, "100", "Заплата", core.NewDate(2025, 3, 1), ""); err != nil {
		t.Fatalf("income add: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, core.Income, "100", "Храна", core.NewDate(2025, 3, 1), ""); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expense category on income expected ErrUnknownCategory, got %v", err)
	}

	// Expense draws from the registry as it stands right now.
	if _, err := svc.AddTransaction(ctx, core.Expense, "100", "Несъществуваща", core.NewDate(2025, 3, 1), ""); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("unknown expense category expected ErrUnknownCategory, got %v", err)
	}
	if err := svc.AddCategory(ctx, "Развлечения"); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, core.Expense, "100", "Развлечения", core.NewDate(2025, 3, 1), ""); err != nil {
		t.Fatalf("freshly added category should be usable: %v", err)
	}

	if _, err := svc.AddTransaction(ctx, "transfer", "100", "Храна", core.NewDate(2025, 3, 1), ""); !errors.Is(err, core.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestRemovedCategoryKeepsOldRecords(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	m := core.Month{Year: 2025, Month: time.March}

	if _, err := svc.AddTransaction(ctx, core.Expense, "10", "Транспорт", core.NewDate(2025, 3, 5), ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	fallback, err := svc.RemoveCategory(ctx, "Транспорт")
	if err != nil {
		t.Fatalf("remove category: %v", err)
	}
	if fallback == "" || fallback == "Транспорт" {
		t.Fatalf("unexpected fallback %q", fallback)
	}

	// The old record keeps its category and still aggregates under it.
	s := svc.Summary(m)
	if len(s.ByCategory) != 1 || s.ByCategory[0].Name != "Транспорт" {
		t.Fatalf("removed category must keep aggregating old records: %+v", s.ByCategory)
	}
	// But new records can no longer use it.
	if _, err := svc.AddTransaction(ctx, core.Expense, "10", "Транспорт", core.NewDate(2025, 3, 6), ""); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("removed category should be rejected for new records, got %v", err)
	}
}

func TestSummaryAndWasteful(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	m := core.Month{Year: 2025, Month: time.March}

	if _, err := svc.AddTransaction(ctx, core.Income, "2000", "Заплата", core.NewDate(2025, 3, 1), ""); err != nil {
		t.Fatalf("add income: %v", err)
	}
	e, err := svc.AddTransaction(ctx, core.Expense, "50", "Храна", core.NewDate(2025, 3, 2), "")
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}

	s := svc.Summary(m)
	if s.Income.Cents != 200000 || s.Expense.Cents != 5000 || s.Balance.Cents != 195000 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.WastefulTotal.Cents != 0 {
		t.Fatalf("nothing flagged yet, got %d", s.WastefulTotal.Cents)
	}

	if err := svc.ToggleWasteful(ctx, e.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !svc.IsWasteful(e.ID) {
		t.Fatalf("flag not visible")
	}
	if svc.Summary(m).WastefulTotal.Cents != 5000 {
		t.Fatalf("wasteful total not recomputed")
	}
}

func TestPruneWasteful(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	e, err := svc.AddTransaction(ctx, core.Expense, "50", "Храна", core.NewDate(2025, 3, 2), "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.ToggleWasteful(ctx, e.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.ToggleWasteful(ctx, "gone"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	dropped, err := svc.PruneWasteful(ctx)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", dropped)
	}
	if !svc.IsWasteful(e.ID) {
		t.Fatalf("live flag must survive the prune")
	}
}

func TestMonthTransactionsDisplayOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	m := core.Month{Year: 2025, Month: time.March}

	if _, err := svc.AddTransaction(ctx, core.Expense, "10", "Храна", core.NewDate(2025, 3, 10), ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, core.Income, "100", "Заплата", core.NewDate(2025, 3, 20), ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, core.Expense, "10", "Храна", core.NewDate(2025, 3, 5), ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := svc.MonthTransactions(m)
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	if got[0].Type != core.Income {
		t.Fatalf("income must come first")
	}
	if !got[1].Date.Before(got[2].Date) {
		t.Fatalf("expenses must be chronological: %v then %v", got[1].Date, got[2].Date)
	}
}
