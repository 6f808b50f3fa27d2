package adapter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Session store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreBadger = "badger"
)

// OpenSessionStore opens the store named by driver. For sqlite, path is the
// database file; for badger it is the database directory.
func OpenSessionStore(driver, path string, logger *slog.Logger) (SessionStore, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case StoreMemory, "":
		return NewMemorySessionStore(), nil
	case StoreSQLite:
		if path == "" {
			return nil, fmt.Errorf("sqlite session store requires a path")
		}

		return NewSQLiteSessionStore(filepath.Clean(path))
	case StoreBadger:
		return NewBadgerSessionStore(BadgerConfig{
			Path:       path,
			SyncWrites: true,
			Logger:     logger,
		})
	default:
		return nil, fmt.Errorf("unknown session store driver %q", driver)
	}
}
