package domain

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

func makeFiles(n int) []m.Path {
	files := make([]m.Path, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, m.Path(fmt.Sprintf("/srv/plugin/file-%03d.php", i)))
	}

	return files
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestScanSessions_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{0, 1, 9, 10, 11, 50, 123} {
		for _, batchSize := range []int{1, 3, 10, 25, 50, 100} {
			t.Run(fmt.Sprintf("n=%d b=%d", n, batchSize), func(t *testing.T) {
				sessions := NewScanSessions(adapter.NewMemorySessionStore())
				files := makeFiles(n)

				id, err := sessions.Create(ctx, files, batchSize, nil)
				require.NoError(t, err)

				total := (n + batchSize - 1) / batchSize

				var rebuilt []m.Path

				for i := 1; i <= total; i++ {
					slice, err := sessions.GetBatch(ctx, id, i)
					require.NoError(t, err)

					assert.Empty(t, slice.Message)
					assert.Equal(t, total, slice.TotalBatches)
					assert.Equal(t, i, slice.BatchNumber)
					assert.Equal(t, i == total, slice.IsLastBatch)
					assert.LessOrEqual(t, len(slice.Files), batchSize)

					rebuilt = append(rebuilt, slice.Files...)
				}

				if n == 0 {
					assert.Empty(t, rebuilt)
					return
				}

				assert.Equal(t, files, rebuilt)
			})
		}
	}
}

func TestScanSessions_GetBatch(t *testing.T) {
	ctx := context.Background()
	sessions := NewScanSessions(adapter.NewMemorySessionStore())

	id, err := sessions.Create(ctx, makeFiles(5), 2, []string{m.VendorExclusion})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "phpcompat_scan_"))

	t.Run("last short batch", func(t *testing.T) {
		slice, err := sessions.GetBatch(ctx, id, 3)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{"/srv/plugin/file-004.php"}, slice.Files)
		assert.True(t, slice.IsLastBatch)
		assert.True(t, slice.Found())
	})

	for _, n := range []int{-1, 0, 4, 100} {
		t.Run(fmt.Sprintf("out of range %d", n), func(t *testing.T) {
			slice, err := sessions.GetBatch(ctx, id, n)
			require.NoError(t, err)

			assert.Empty(t, slice.Files)
			assert.NotNil(t, slice.Files)
			assert.Equal(t, MsgInvalidBatchNumber, slice.Message)
			assert.Equal(t, 3, slice.TotalBatches)
			assert.False(t, slice.Found())
		})
	}

	t.Run("unknown session", func(t *testing.T) {
		for _, n := range []int{0, 1, 2} {
			slice, err := sessions.GetBatch(ctx, "phpcompat_scan_missing", n)
			require.NoError(t, err)

			assert.Empty(t, slice.Files)
			assert.Equal(t, 0, slice.TotalBatches)
			assert.Equal(t, MsgSessionNotFound, slice.Message)
		}
	})
}

func TestScanSessions_CreateRejectsBadBatchSize(t *testing.T) {
	sessions := NewScanSessions(adapter.NewMemorySessionStore())

	_, err := sessions.Create(context.Background(), makeFiles(3), 0, nil)

	assert.Error(t, err)
}

func TestScanSessions_Delete(t *testing.T) {
	ctx := context.Background()
	sessions := NewScanSessions(adapter.NewMemorySessionStore())

	id, err := sessions.Create(ctx, makeFiles(3), 10, nil)
	require.NoError(t, err)

	require.NoError(t, sessions.Delete(ctx, id))
	require.NoError(t, sessions.Delete(ctx, id))

	slice, err := sessions.GetBatch(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, MsgSessionNotFound, slice.Message)
}

func TestScanSessions_CreateSweepsExpiredSessions(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	ids := []string{"old", "recent", "new"}
	next := 0

	sessions := NewScanSessions(adapter.NewMemorySessionStore(),
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			id := ids[next]
			next++

			return id
		}),
	)

	oldID, err := sessions.Create(ctx, makeFiles(2), 10, nil)
	require.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Minute)
	recentID, err := sessions.Create(ctx, makeFiles(2), 10, nil)
	require.NoError(t, err)

	clock.now = clock.now.Add(SessionTTL - 29*time.Minute)
	_, err = sessions.Create(ctx, makeFiles(2), 10, nil)
	require.NoError(t, err)

	slice, err := sessions.GetBatch(ctx, oldID, 1)
	require.NoError(t, err)
	assert.Equal(t, MsgSessionNotFound, slice.Message)

	slice, err = sessions.GetBatch(ctx, recentID, 1)
	require.NoError(t, err)
	assert.Empty(t, slice.Message, "sessions younger than the TTL survive")
	assert.True(t, slice.Found())

	clock.now = clock.now.Add(time.Minute)
	removed, err := sessions.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
