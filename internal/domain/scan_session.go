package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	"phpcompat.dev/pkg/phpcompat/internal/metrics"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// SessionTTL is how long a scan session survives before the next Create
// reaps it.
const SessionTTL = time.Hour

const sessionIDPrefix = "phpcompat_scan_"

// Lookup failure messages carried by BatchSlice.Message.
const (
	MsgSessionNotFound    = "Scan session not found or expired."
	MsgInvalidBatchNumber = "Invalid batch number."
)

// ScanSessions manages persisted scan sessions.
type ScanSessions interface {
	// Create persists a session for files and returns its id. Sessions older
	// than SessionTTL are swept first.
	Create(ctx context.Context, files []m.Path, batchSize int, exclusions []string) (string, error)
	// GetBatch returns the 1-based batchNumber slice of the session. Unknown
	// sessions and out-of-range numbers yield an empty slice with a message.
	GetBatch(ctx context.Context, id string, batchNumber int) (m.BatchSlice, error)
	// Delete removes the session. Unknown ids are ignored.
	Delete(ctx context.Context, id string) error
	// Sweep removes sessions older than SessionTTL and returns their ids.
	Sweep(ctx context.Context) ([]string, error)
}

// SessionOption configures the session manager.
type SessionOption func(*scanSessions)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) SessionOption {
	return func(s *scanSessions) {
		s.now = now
	}
}

// WithIDGenerator replaces the random id suffix generator.
func WithIDGenerator(next func() string) SessionOption {
	return func(s *scanSessions) {
		s.nextID = next
	}
}

// WithSessionMetrics records session activity.
func WithSessionMetrics(mt metrics.ScanMetrics) SessionOption {
	return func(s *scanSessions) {
		s.metrics = mt
	}
}

type scanSessions struct {
	store   adapter.SessionStore
	now     func() time.Time
	nextID  func() string
	metrics metrics.ScanMetrics
}

// NewScanSessions constructs a ScanSessions backed by store.
func NewScanSessions(store adapter.SessionStore, opts ...SessionOption) ScanSessions {
	s := &scanSessions{
		store:   store,
		now:     time.Now,
		nextID:  uuid.NewString,
		metrics: metrics.Noop{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *scanSessions) Create(ctx context.Context, files []m.Path, batchSize int, exclusions []string) (string, error) {
	if batchSize < 1 {
		return "", fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	if _, err := s.Sweep(ctx); err != nil {
		slog.Warn("Session sweep failed", "error", err)
	}

	session := m.Session{
		ID:           sessionIDPrefix + s.nextID(),
		Files:        append([]m.Path(nil), files...),
		BatchSize:    batchSize,
		Exclusions:   append([]string{}, exclusions...),
		CreatedAt:    s.now().UTC(),
		TotalFiles:   len(files),
		TotalBatches: m.TotalBatchesFor(len(files), batchSize),
	}

	if err := s.store.Put(ctx, session); err != nil {
		return "", fmt.Errorf("store scan session: %w", err)
	}

	s.metrics.IncSessionsCreated()
	slog.Debug("Created scan session", "id", session.ID, "files", session.TotalFiles, "batches", session.TotalBatches)

	return session.ID, nil
}

func (s *scanSessions) GetBatch(ctx context.Context, id string, batchNumber int) (m.BatchSlice, error) {
	session, err := s.store.Get(ctx, id)
	if errors.Is(err, adapter.ErrSessionNotFound) {
		return m.BatchSlice{
			Files:       []m.Path{},
			BatchNumber: batchNumber,
			Message:     MsgSessionNotFound,
		}, nil
	}

	if err != nil {
		return m.BatchSlice{}, fmt.Errorf("load scan session %s: %w", id, err)
	}

	if batchNumber < 1 || batchNumber > session.TotalBatches {
		return m.BatchSlice{
			Files:        []m.Path{},
			BatchNumber:  batchNumber,
			TotalBatches: session.TotalBatches,
			Message:      MsgInvalidBatchNumber,
		}, nil
	}

	start := (batchNumber - 1) * session.BatchSize
	end := min(start+session.BatchSize, len(session.Files))

	return m.BatchSlice{
		Files:        append([]m.Path(nil), session.Files[start:end]...),
		BatchNumber:  batchNumber,
		TotalBatches: session.TotalBatches,
		IsLastBatch:  batchNumber >= session.TotalBatches,
	}, nil
}

func (s *scanSessions) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete scan session %s: %w", id, err)
	}

	return nil
}

func (s *scanSessions) Sweep(ctx context.Context) ([]string, error) {
	removed, err := s.store.Sweep(ctx, s.now().Add(-SessionTTL))
	if err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		s.metrics.AddSessionsSwept(len(removed))
		slog.Debug("Swept expired scan sessions", "count", len(removed))
	}

	return removed, nil
}
