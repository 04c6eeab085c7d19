package core

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// MaxNoteLength caps the free-text note on a transaction.
const MaxNoteLength = 140

type (
	TxType string

	// Transaction is a single recorded income or expense event. It is
	// immutable after creation; the only lifecycle operations are append
	// and per-id removal on the store.
	Transaction struct {
		ID       string `json:"id"`
		Type     TxType `json:"type"`
		Amount   Money  `json:"amount"`
		Category string `json:"category"`
		Date     Date   `json:"date"`
		Note     string `json:"note"`
	}
)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrEmptyCategory = errors.New("empty category")
	ErrNoteTooLong   = errors.New("note too long")
)

// IncomeCategories is the fixed, non-persisted set of income categories.
var IncomeCategories = []string{"Заплата", "Свободна практика", "Друго"}

// DefaultExpenseCategories seeds the category registry on first run.
var DefaultExpenseCategories = []string{"Храна", "Транспорт", "Сметки", "Наем"}

func (t TxType) Valid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

// IsIncomeCategory reports whether name is one of the fixed income categories.
func IsIncomeCategory(name string) bool {
	for _, c := range IncomeCategories {
		if c == name {
			return true
		}
	}
	return false
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if utf8.RuneCountInString(t.Note) > MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}
