// Package kv provides the bounded key/value string stores the persistence
// gateway writes through. A store behaves like browser local storage: keys
// map to strings, capacity is limited, and a write past the quota fails
// without corrupting the stored value.
package kv

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded is returned by Put when the write would push the store
// past its byte quota. The previously stored value is left untouched.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// DefaultQuotaBytes mirrors the usual browser local-storage budget.
const DefaultQuotaBytes = 5 << 20

// Store is a key to string map with bounded capacity.
type Store interface {
	// Get returns the value under key and whether it was present.
	Get(key string) (string, bool, error)
	// Put writes value under key, replacing any previous value. It returns
	// ErrQuotaExceeded when the write would exceed the quota.
	Put(key, value string) error
	Close() error
}

// MemoryStore is the in-process backend, used by tests and as a throwaway
// scratch ledger. A quota of zero means unbounded.
type MemoryStore struct {
	mu     sync.Mutex
	quota  int64
	values map[string]string
}

func NewMemoryStore(quotaBytes int64) *MemoryStore {
	return &MemoryStore{quota: quotaBytes, values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota > 0 {
		var used int64
		for k, v := range s.values {
			if k == key {
				continue
			}
			used += int64(len(k) + len(v))
		}
		if used+int64(len(key)+len(value)) > s.quota {
			return ErrQuotaExceeded
		}
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }
