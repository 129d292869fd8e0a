package dashboard

import (
	"context"
	"sync"
	"time"
)

// sequencerIdleTTL is how long a view with nothing in flight keeps its highest
// sequence. Replays older than that are no longer recognized.
const sequencerIdleTTL = 10 * time.Minute

// RequestSequencer orders concurrent requests for the same view. Each
// request carries a client sequence number that grows with every new
// request of that view. Starting a newer request cancels the computation
// of the older one, and an older request can no longer publish its result.
type RequestSequencer struct {
	mu        sync.Mutex
	views     map[string]*viewSlot
	now       func() time.Time
	lastSweep time.Time
}

type viewSlot struct {
	highest int64
	cancel  context.CancelFunc
	// idleSince is when the latest request finished; zero while one runs.
	idleSince time.Time
}

// Ticket tracks one sequenced request.
type Ticket struct {
	key    string
	seq    int64
	cancel context.CancelFunc
	s      *RequestSequencer
}

// NewRequestSequencer creates an empty RequestSequencer.
func NewRequestSequencer() *RequestSequencer {
	return &RequestSequencer{
		views: make(map[string]*viewSlot),
		now:   time.Now,
	}
}

// Begin registers seq as the latest request of the view identified by key.
// The returned context is cancelled as soon as a newer request of the same
// view begins. Begin returns ok=false when a request with an equal or
// higher sequence was already seen.
func (s *RequestSequencer) Begin(ctx context.Context, key string, seq int64) (context.Context, *Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()

	slot, exists := s.views[key]
	if exists && seq <= slot.highest {
		return ctx, nil, false
	}
	if !exists {
		slot = &viewSlot{}
		s.views[key] = slot
	}
	if slot.cancel != nil {
		slot.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	slot.highest = seq
	slot.cancel = cancel
	slot.idleSince = time.Time{}

	return reqCtx, &Ticket{key: key, seq: seq, cancel: cancel, s: s}, true
}

// Finish releases the ticket and reports whether it is still the latest
// request of its view. A false result means the response is stale.
func (t *Ticket) Finish() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	t.cancel()
	slot := t.s.views[t.key]
	current := slot != nil && slot.highest == t.seq
	if current {
		slot.cancel = nil
		slot.idleSince = t.s.now()
	}
	return current
}

// sweep forgets views that have been idle for longer than sequencerIdleTTL.
// It runs at most once per TTL. Callers hold s.mu.
func (s *RequestSequencer) sweep() {
	now := s.now()
	if now.Sub(s.lastSweep) < sequencerIdleTTL {
		return
	}
	s.lastSweep = now
	for key, slot := range s.views {
		if slot.cancel == nil && now.Sub(slot.idleSince) >= sequencerIdleTTL {
			delete(s.views, key)
		}
	}
}
