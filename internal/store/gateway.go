// Package store holds the stateful collections of the ledger and the
// persistence contract that keeps them consistent with the underlying
// key/value store: load with fallback, save with rollback on failure.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/emmy649/budget/internal/kv"
)

// Gateway wraps a kv.Store with the JSON load/save contract. It performs no
// retries; rollback policy belongs to the callers.
type Gateway struct {
	kv kv.Store
}

func NewGateway(s kv.Store) *Gateway {
	return &Gateway{kv: s}
}

// Load decodes the value under key into dst and reports whether it did.
// Missing keys and malformed values return false, in which case the caller
// must fall back to its default: dst may have been partially filled.
func (g *Gateway) Load(ctx context.Context, key string, dst any) bool {
	raw, ok, err := g.kv.Get(key)
	if err != nil {
		slog.WarnContext(ctx, "Read failed, using fallback", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.WarnContext(ctx, "Discarding malformed stored value", "key", key, "error", err)
		return false
	}
	return true
}

// Save serializes v and writes it under key. A quota failure surfaces as a
// wrapped kv.ErrQuotaExceeded for the caller to roll back on.
func (g *Gateway) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := g.kv.Put(key, string(b)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
