package memstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInsertGetUpdateDelete(t *testing.T) {
	s := New()

	s.Insert("things", "a", "first")

	got, ok := s.Get("things", "a")
	require.True(t, ok)
	assert.Equal(t, "first", got)

	_, ok = s.Get("things", "missing")
	assert.False(t, ok)
	_, ok = s.Get("nothing", "a")
	assert.False(t, ok)

	assert.True(t, s.Update("things", "a", "second"))
	got, _ = s.Get("things", "a")
	assert.Equal(t, "second", got)

	assert.False(t, s.Update("things", "missing", "x"))

	assert.True(t, s.Delete("things", "a"))
	assert.False(t, s.Delete("things", "a"))
	_, ok = s.Get("things", "a")
	assert.False(t, ok)
}

func TestStoreListKeepsInsertionOrder(t *testing.T) {
	s := New()

	s.Insert("things", "a", 1)
	s.Insert("things", "b", 2)
	s.Insert("things", "c", 3)

	// re-inserting an id keeps its slot
	s.Insert("things", "a", 10)

	assert.Equal(t, []any{10, 2, 3}, s.List("things"))

	s.Delete("things", "b")
	assert.Equal(t, []any{10, 3}, s.List("things"))
}

func TestNextSeqIsMonotonicPerKind(t *testing.T) {
	s := New()

	assert.Equal(t, int64(1), s.NextSeq("bookings"))
	assert.Equal(t, int64(2), s.NextSeq("bookings"))
	assert.Equal(t, int64(1), s.NextSeq("help_requests"))
}

func TestNextSeqNeverReassignsUnderConcurrency(t *testing.T) {
	s := New()

	const workers = 16
	const perWorker = 100

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				seq := s.NextSeq("bookings")
				mu.Lock()
				require.False(t, seen[seq], "sequence %d issued twice", seq)
				seen[seq] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
