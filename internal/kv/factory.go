package kv

import "fmt"

// BackendType selects which store implementation backs the ledger.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
)

func (bt BackendType) String() string { return string(bt) }

func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Open creates the configured store. dbPath is only used by the sqlite
// backend.
func Open(typ BackendType, dbPath string, quotaBytes int64) (Store, error) {
	switch typ {
	case MemoryBackend:
		return NewMemoryStore(quotaBytes), nil
	case SQLiteBackend:
		return NewSQLiteStore(dbPath, quotaBytes)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", typ)
	}
}
