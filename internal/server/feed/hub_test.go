package feed

import (
	"sync"
	"testing"

	"github.com/dmitrijs2005/bowlsignup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func list(ids ...string) []models.Bowler {
	out := make([]models.Bowler, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Bowler{ID: id})
	}
	return out
}

func ids(s Snapshot) []string {
	out := make([]string, 0, len(s))
	for _, b := range s {
		out = append(out, b.ID)
	}
	return out
}

func TestSubscribe_BeforeAnyPublish_Empty(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	assert.False(t, h.Primed())
	select {
	case <-ch:
		t.Fatal("unexpected snapshot")
	default:
	}
}

func TestSubscribe_GetsLatestImmediately(t *testing.T) {
	h := NewHub()
	h.Publish(list("a"))
	h.Publish(list("a", "b"))

	ch, cancel := h.Subscribe()
	defer cancel()

	got := <-ch
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestPublish_LatestWinsForSlowSubscriber(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Publish(list("a"))
	h.Publish(list("a", "b"))
	h.Publish(list("c"))

	got := <-ch
	assert.Equal(t, []string{"c"}, ids(got))

	select {
	case s := <-ch:
		t.Fatalf("unexpected extra snapshot %v", ids(s))
	default:
	}
}

func TestPublish_CopiesInput(t *testing.T) {
	h := NewHub()
	in := list("a")
	h.Publish(in)
	in[0].ID = "mutated"

	ch, cancel := h.Subscribe()
	defer cancel()
	assert.Equal(t, []string{"a"}, ids(<-ch))
}

func TestPublish_EmptyListIsDelivered(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Publish(nil)
	got, ok := <-ch
	require.True(t, ok)
	assert.Empty(t, got)
	assert.True(t, h.Primed())
}

func TestUnsubscribe_ClosesAndIsIdempotent(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	require.Equal(t, 1, h.Subscribers())

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, h.Subscribers())

	// publishing after unsubscribe must not panic on the closed channel
	assert.NotPanics(t, func() { h.Publish(list("x")) })
}

func TestPublish_ConcurrentSubscribersSeeFinalSnapshot(t *testing.T) {
	h := NewHub()

	const n = 8
	chans := make([]<-chan Snapshot, n)
	cancels := make([]func(), n)
	for i := 0; i < n; i++ {
		chans[i], cancels[i] = h.Subscribe()
	}
	defer func() {
		for _, c := range cancels {
			c()
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Publish(list("tmp"))
		}()
	}
	wg.Wait()
	h.Publish(list("final"))

	for _, ch := range chans {
		assert.Equal(t, []string{"final"}, ids(<-ch))
	}
}
