package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dataplot/internal/logger"
)

type recorder struct {
	mu    *sync.Mutex
	order *[]string
	name  string
}

func (r recorder) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
}

type blocker struct{ release chan struct{} }

func (b blocker) Shutdown() { <-b.release }

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	m := NewManager(logger.NoOp{})
	m.Register(recorder{&mu, &order, "first"})
	m.Register(recorder{&mu, &order, "second"})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimesOutSlowComponent(t *testing.T) {
	b := blocker{release: make(chan struct{})}
	defer close(b.release)

	m := NewManager(logger.NoOp{})
	m.timeout = 10 * time.Millisecond
	m.Register(b)

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("shutdown did not honour the component timeout")
	}
}

func TestListenStopsAfterShutdown(t *testing.T) {
	m := NewManager(logger.NoOp{})
	called := false
	m.Listen(func() { called = true })

	m.Shutdown()

	assert.False(t, called)
}
