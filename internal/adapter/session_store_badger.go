package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

const (
	badgerSessionPrefix = "session/"
	badgerStopPrefix    = "stop/"
)

// BadgerConfig configures a BadgerSessionStore.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string
	// InMemory keeps everything in RAM; useful for tests.
	InMemory bool
	// SyncWrites fsyncs every write.
	SyncWrites bool
	// Logger receives badger's internal logging. Nil disables it.
	Logger *slog.Logger
}

// BadgerSessionStore persists sessions in an embedded BadgerDB.
type BadgerSessionStore struct {
	db *badger.DB
}

// badgerLogger adapts slog.Logger to badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// NewBadgerSessionStore opens a badger database according to cfg.
func NewBadgerSessionStore(cfg BadgerConfig) (*BadgerSessionStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}

		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return &BadgerSessionStore{db: db}, nil
}

func sessionKey(id string) []byte {
	return []byte(badgerSessionPrefix + id)
}

func stopKey(key string) []byte {
	return []byte(badgerStopPrefix + key)
}

// Put implements SessionStore.
func (s *BadgerSessionStore) Put(ctx context.Context, session m.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal scan session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(session.ID), data)
	})
}

// Get implements SessionStore.
func (s *BadgerSessionStore) Get(ctx context.Context, id string) (m.Session, error) {
	if err := ctx.Err(); err != nil {
		return m.Session{}, err
	}

	var session m.Session

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return m.Session{}, ErrSessionNotFound
	}

	if err != nil {
		return m.Session{}, fmt.Errorf("read scan session: %w", err)
	}

	return session, nil
}

// Delete implements SessionStore.
func (s *BadgerSessionStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil {
			return err
		}

		return txn.Delete(stopKey(id))
	})
}

// Sweep implements SessionStore.
func (s *BadgerSessionStore) Sweep(ctx context.Context, cutoff time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	removed := []string{}

	err := s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		prefix := []byte(badgerSessionPrefix)

		var expired []string

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var session m.Session

			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &session)
			})
			if err != nil {
				slog.Warn("Skipping unreadable session record", "key", string(it.Item().Key()), "error", err)
				continue
			}

			if session.CreatedAt.Before(cutoff) {
				expired = append(expired, session.ID)
			}
		}

		it.Close()

		for _, id := range expired {
			if err := txn.Delete(sessionKey(id)); err != nil {
				return err
			}

			if err := txn.Delete(stopKey(id)); err != nil {
				return err
			}

			removed = append(removed, id)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sweep scan sessions: %w", err)
	}

	return removed, nil
}

// SetStop implements SessionStore.
func (s *BadgerSessionStore) SetStop(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(stopKey(key), []byte("1"))
	})
}

// ClearStop implements SessionStore.
func (s *BadgerSessionStore) ClearStop(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(stopKey(key))
	})
}

// StopRequested implements SessionStore.
func (s *BadgerSessionStore) StopRequested(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(stopKey(key))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("read stop token: %w", err)
	}

	return true, nil
}

// Close closes the database.
func (s *BadgerSessionStore) Close() error {
	return s.db.Close()
}
