package core

import (
	"errors"
	"strings"
	"testing"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:       "abc",
		Type:     Expense,
		Amount:   Money{Cents: 100},
		Category: "Храна",
		Date:     NewDate(2025, 3, 14),
		Note:     "обяд",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		mutate func(*Transaction)
		want   error
	}{
		{func(x *Transaction) { x.Type = "transfer" }, ErrInvalidType},
		{func(x *Transaction) { x.Type = "" }, ErrInvalidType},
		{func(x *Transaction) { x.Amount = Money{Cents: 0} }, ErrInvalidAmount},
		{func(x *Transaction) { x.Amount = Money{Cents: -1} }, ErrInvalidAmount},
		{func(x *Transaction) { x.Category = "" }, ErrEmptyCategory},
		{func(x *Transaction) { x.Category = "   " }, ErrEmptyCategory},
		{func(x *Transaction) { x.Date = Date{} }, ErrInvalidDate},
		{func(x *Transaction) { x.Note = strings.Repeat("я", MaxNoteLength+1) }, ErrNoteTooLong},
	}
	for i, tc := range cases {
		tx := good
		tc.mutate(&tx)
		if err := tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestNoteLengthCountsRunes(t *testing.T) {
	tx := Transaction{
		Type:     Expense,
		Amount:   Money{Cents: 100},
		Category: "Храна",
		Date:     NewDate(2025, 3, 14),
		Note:     strings.Repeat("я", MaxNoteLength),
	}
	if err := tx.Validate(); err != nil {
		t.Fatalf("140 cyrillic runes should pass, got %v", err)
	}
}

func TestIsIncomeCategory(t *testing.T) {
	for _, name := range IncomeCategories {
		if !IsIncomeCategory(name) {
			t.Fatalf("%q should be an income category", name)
		}
	}
	if IsIncomeCategory("Храна") {
		t.Fatalf("expense category accepted as income")
	}
	if IsIncomeCategory("") {
		t.Fatalf("empty string accepted as income")
	}
}
