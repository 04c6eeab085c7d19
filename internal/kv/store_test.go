package kv

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore(0)
	if _, ok, _ := s.Get("missing"); ok {
		t.Fatalf("missing key reported present")
	}
	if err := s.Put("k", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("expected v2, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestMemoryStoreQuota(t *testing.T) {
	s := NewMemoryStore(10)
	if err := s.Put("k", "12345678"); err != nil { // 1 + 8 = 9 bytes
		t.Fatalf("put within quota: %v", err)
	}
	err := s.Put("x", "123456789") // 9 + 1 + 9 > 10
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if _, ok, _ := s.Get("x"); ok {
		t.Fatalf("failed put must not store anything")
	}
	v, ok, _ := s.Get("k")
	if !ok || v != "12345678" {
		t.Fatalf("existing value disturbed by failed put: %q ok=%v", v, ok)
	}
}

func TestMemoryStoreOverwriteExcludesOldValue(t *testing.T) {
	s := NewMemoryStore(10)
	if err := s.Put("k", "123456789"); err != nil { // exactly 10 bytes
		t.Fatalf("put: %v", err)
	}
	// Replacing the value frees the old bytes first; only the new size counts.
	if err := s.Put("k", "abcdefghi"); err != nil {
		t.Fatalf("same-size overwrite should fit: %v", err)
	}
	if err := s.Put("k", "0123456789"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("oversized overwrite expected ErrQuotaExceeded, got %v", err)
	}
	v, _, _ := s.Get("k")
	if v != "abcdefghi" {
		t.Fatalf("failed overwrite must keep the old value, got %q", v)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := NewSQLiteStore(path, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := s.Put("budget_tx", `[{"id":"a"}]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("budget_tx", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get("budget_tx")
	if err != nil || !ok || v != `[]` {
		t.Fatalf("expected [], got %q ok=%v err=%v", v, ok, err)
	}
}

func TestSQLiteStoreQuota(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := NewSQLiteStore(path, 10)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if err := s.Put("k", "12345678"); err != nil {
		t.Fatalf("put within quota: %v", err)
	}
	if err := s.Put("x", "123456789"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	v, ok, _ := s.Get("k")
	if !ok || v != "12345678" {
		t.Fatalf("existing value disturbed by failed put: %q ok=%v", v, ok)
	}
}

func TestBackendType(t *testing.T) {
	cases := []struct {
		bt BackendType
		ok bool
	}{
		{MemoryBackend, true},
		{SQLiteBackend, true},
		{"postgres", false},
		{"", false},
	}
	for i, tc := range cases {
		if tc.bt.IsValid() != tc.ok {
			t.Fatalf("case %d: IsValid(%q) != %v", i, tc.bt, tc.ok)
		}
	}
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	if _, err := Open("postgres", "", 0); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	s, err := Open(MemoryBackend, "", 0)
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	s.Close()
}
