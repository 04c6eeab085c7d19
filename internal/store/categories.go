package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/emmy649/budget/internal/core"
)

const categoriesKey = "budget_categories"

// legacyIncomeCategory is a name older persisted lists may still contain.
// It is filtered out on load and never allowed back in.
const legacyIncomeCategory = "Доход"

// CategoryRegistry is the ordered set of user-managed expense categories.
// It never goes below one entry: removing the last category is a no-op so
// the entry form always has a valid selection.
type CategoryRegistry struct {
	gw       *Gateway
	names    []string
	snapshot []string
}

func NewCategoryRegistry(ctx context.Context, gw *Gateway) *CategoryRegistry {
	r := &CategoryRegistry{gw: gw}
	names := append([]string(nil), core.DefaultExpenseCategories...)
	var loaded []string
	if gw.Load(ctx, categoriesKey, &loaded) {
		names = loaded
	}
	filtered := names[:0:0]
	for _, n := range names {
		if n != legacyIncomeCategory {
			filtered = append(filtered, n)
		}
	}
	if len(filtered) == 0 {
		filtered = append([]string(nil), core.DefaultExpenseCategories...)
	}
	r.names = filtered
	r.snapshot = append([]string(nil), filtered...)
	return r
}

// Add appends a new category name. Empty names (after trimming) and exact
// duplicates are silently ignored.
func (r *CategoryRegistry) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || name == legacyIncomeCategory || r.Has(name) {
		return nil
	}
	r.names = append(r.names, name)
	if err := r.persist(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Category added", "name", name)
	return nil
}

// Remove deletes name from the registry. Removing an unknown name or the
// last remaining category is a no-op.
func (r *CategoryRegistry) Remove(ctx context.Context, name string) error {
	if len(r.names) <= 1 {
		return nil
	}
	idx := -1
	for i, n := range r.names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	r.names = append(r.names[:idx:idx], r.names[idx+1:]...)
	if err := r.persist(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Category removed", "name", name)
	return nil
}

// Names returns a copy of the ordered category list.
func (r *CategoryRegistry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *CategoryRegistry) Has(name string) bool {
	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// First returns the first category, the fallback selection for consumers
// whose current choice was just removed.
func (r *CategoryRegistry) First() string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[0]
}

func (r *CategoryRegistry) persist(ctx context.Context) error {
	if err := r.gw.Save(ctx, categoriesKey, r.names); err != nil {
		r.names = append([]string(nil), r.snapshot...)
		slog.WarnContext(ctx, "Persist failed, state rolled back", "key", categoriesKey, "error", err)
		return fmt.Errorf("%w: %v", ErrStorageFull, err)
	}
	r.snapshot = append([]string(nil), r.names...)
	return nil
}
