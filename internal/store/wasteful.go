package store

import (
	"context"
	"fmt"
	"log/slog"
)

const wastefulKey = "budget_waste_ids"

// WastefulSet is the set of transaction ids flagged as unnecessary spending.
// Membership is a map for O(1) lookups; the insertion-ordered slice is the
// persisted shape. Flags for deleted transactions are inert (sums always
// join against the live transaction list) but can be pruned.
type WastefulSet struct {
	gw       *Gateway
	ids      []string
	members  map[string]bool
	snapshot []string
}

func NewWastefulSet(ctx context.Context, gw *Gateway) *WastefulSet {
	s := &WastefulSet{gw: gw, members: make(map[string]bool)}
	var loaded []string
	if gw.Load(ctx, wastefulKey, &loaded) {
		for _, id := range loaded {
			if id == "" || s.members[id] {
				continue
			}
			s.ids = append(s.ids, id)
			s.members[id] = true
		}
	}
	s.snapshot = append([]string(nil), s.ids...)
	return s
}

// Toggle flips the flag on id: present becomes absent and vice versa.
// Toggling twice restores the original state.
func (s *WastefulSet) Toggle(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if s.members[id] {
		s.remove(id)
	} else {
		s.ids = append(s.ids, id)
		s.members[id] = true
	}
	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Wasteful flag toggled", "id", id, "flagged", s.members[id])
	return nil
}

func (s *WastefulSet) Has(id string) bool { return s.members[id] }

// IDs returns the flagged ids in insertion order.
func (s *WastefulSet) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Members returns the set as a lookup map for the aggregator.
func (s *WastefulSet) Members() map[string]bool {
	out := make(map[string]bool, len(s.members))
	for id := range s.members {
		out[id] = true
	}
	return out
}

// Prune drops flags whose id is not in live. Nothing is persisted when no
// flag was dropped.
func (s *WastefulSet) Prune(ctx context.Context, live map[string]bool) (int, error) {
	kept := s.ids[:0:0]
	for _, id := range s.ids {
		if live[id] {
			kept = append(kept, id)
		}
	}
	dropped := len(s.ids) - len(kept)
	if dropped == 0 {
		return 0, nil
	}
	s.ids = kept
	s.members = make(map[string]bool, len(kept))
	for _, id := range kept {
		s.members[id] = true
	}
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "Wasteful flags pruned", "dropped", dropped)
	return dropped, nil
}

func (s *WastefulSet) remove(id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			break
		}
	}
	delete(s.members, id)
}

func (s *WastefulSet) persist(ctx context.Context) error {
	if err := s.gw.Save(ctx, wastefulKey, s.ids); err != nil {
		s.ids = append([]string(nil), s.snapshot...)
		s.members = make(map[string]bool, len(s.ids))
		for _, id := range s.ids {
			s.members[id] = true
		}
		slog.WarnContext(ctx, "Persist failed, state rolled back", "key", wastefulKey, "error", err)
		return fmt.Errorf("%w: %v", ErrStorageFull, err)
	}
	s.snapshot = append([]string(nil), s.ids...)
	return nil
}
