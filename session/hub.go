package session

import (
	"sync"
	"time"

	"github.com/signadot/livedoc/report"
)

// DefaultBroadcastTimeout is the default timeout for sending roots to watchers.
// If a watcher doesn't read within this time, the watch is failed.
const DefaultBroadcastTimeout = 5 * time.Second

// Hub hands published roots to watchers.
// It is safe for concurrent use.
type Hub struct {
	mu               sync.RWMutex
	watchers         map[*Watcher]struct{}
	broadcastTimeout time.Duration
}

// Watcher receives published roots on Roots.
// If the watcher can't keep up (Roots blocks), the watch is failed
// and the Failed channel is closed.
type Watcher struct {
	Roots  chan *report.Root
	Failed chan struct{}

	failOnce sync.Once
}

func NewWatcher(buffer int) *Watcher {
	return &Watcher{
		Roots:  make(chan *report.Root, buffer),
		Failed: make(chan struct{}),
	}
}

func NewHub(timeout time.Duration) *Hub {
	if timeout <= 0 {
		timeout = DefaultBroadcastTimeout
	}
	return &Hub{
		watchers:         make(map[*Watcher]struct{}),
		broadcastTimeout: timeout,
	}
}

func (h *Hub) Watch(w *Watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.watchers[w] = struct{}{}
}

// Unwatch removes a watcher.
// After unwatching, no more roots will be sent to the watcher's channel.
func (h *Hub) Unwatch(w *Watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.watchers, w)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers)
}

// Broadcast sends root to all watchers.
//
// If a watcher's channel blocks for longer than the broadcast timeout, the
// watch is failed (Failed is closed) and the watcher is removed.
func (h *Hub) Broadcast(root *report.Root) {
	h.mu.RLock()
	targets := make([]*Watcher, 0, len(h.watchers))
	for w := range h.watchers {
		targets = append(targets, w)
	}
	h.mu.RUnlock()

	var failed []*Watcher
	for _, w := range targets {
		select {
		case <-w.Failed:
			continue
		default:
		}
		select {
		case w.Roots <- root:
		case <-time.After(h.broadcastTimeout):
			w.failOnce.Do(func() {
				close(w.Failed)
			})
			failed = append(failed, w)
		}
	}
	if len(failed) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, w := range failed {
		delete(h.watchers, w)
	}
}
