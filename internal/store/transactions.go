package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/emmy649/budget/internal/core"
)

// txKey matches the legacy persisted layout, newest transaction first.
const txKey = "budget_tx"

// ErrStorageFull is returned when a mutation could not be persisted. The
// in-memory state has already been rolled back to the last persisted
// snapshot when callers see this.
var ErrStorageFull = errors.New("storage full: export or delete old records")

// TransactionStore owns the authoritative transaction list. Every mutation
// persists the whole collection; if the write fails the visible state is
// rolled back so memory and storage never diverge past one failed attempt.
type TransactionStore struct {
	gw       *Gateway
	items    []core.Transaction // newest first
	snapshot []core.Transaction // last successfully persisted state
}

func NewTransactionStore(ctx context.Context, gw *Gateway) *TransactionStore {
	s := &TransactionStore{gw: gw}
	var loaded []core.Transaction
	if gw.Load(ctx, txKey, &loaded) {
		s.items = loaded
	} else {
		s.items = nil
	}
	s.snapshot = snapshotTx(s.items)
	return s
}

// Add validates t, assigns it a fresh id if it has none, prepends it and
// persists. On a validation error or persist failure the store is unchanged.
func (s *TransactionStore) Add(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Note = strings.TrimSpace(t.Note)
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	s.items = append([]core.Transaction{t}, s.items...)
	if err := s.persist(ctx); err != nil {
		return core.Transaction{}, err
	}
	slog.InfoContext(ctx, "Transaction added",
		"id", t.ID,
		"type", string(t.Type),
		"amount_cents", t.Amount.Cents,
		"category", t.Category,
		"date", t.Date.String())
	return t, nil
}

// Remove deletes the transaction with the given id. Removing an absent id is
// a no-op and does not touch storage.
func (s *TransactionStore) Remove(ctx context.Context, id string) error {
	idx := -1
	for i, t := range s.items {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Transaction removed", "id", id)
	return nil
}

// All returns a copy of the current collection, newest first.
func (s *TransactionStore) All() []core.Transaction {
	return snapshotTx(s.items)
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int { return len(s.items) }

func (s *TransactionStore) persist(ctx context.Context) error {
	if err := s.gw.Save(ctx, txKey, s.items); err != nil {
		s.items = snapshotTx(s.snapshot)
		slog.WarnContext(ctx, "Persist failed, state rolled back", "key", txKey, "error", err)
		return fmt.Errorf("%w: %v", ErrStorageFull, err)
	}
	s.snapshot = snapshotTx(s.items)
	return nil
}

func snapshotTx(items []core.Transaction) []core.Transaction {
	return append([]core.Transaction(nil), items...)
}
