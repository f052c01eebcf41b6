package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dsaviz/pkg/playback"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := base
	r.now = func() time.Time { return now }

	a := r.Open()
	now = now.Add(time.Second)
	b := r.Open()
	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, r.Len())

	now = now.Add(time.Second)
	r.Update(a.ID, playback.State{Algorithm: "bfs", Cursor: 2, Length: 9, Playing: true})
	got, ok := r.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "bfs", got.Algorithm)
	assert.Equal(t, 2, got.Cursor)
	assert.True(t, got.Playing)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, 2*time.Second, got.Age(now))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)

	final, ok := r.Close(a.ID)
	require.True(t, ok)
	assert.Equal(t, 9, final.Length)
	_, ok = r.Close(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())

	r.Update("missing", playback.State{Cursor: 1})
	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := r.Open()
			r.Update(s.ID, playback.State{Cursor: i})
			_ = r.List()
			r.Close(s.ID)
		}()
	}
	wg.Wait()
	assert.Zero(t, r.Len())
}
