package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestRequestSequencer_NewerRequestCancelsOlder(t *testing.T) {
	s := NewRequestSequencer()

	oldCtx, oldTicket, ok := s.Begin(context.Background(), "user:dre", 1)
	if !ok {
		t.Fatal("expected first request to begin")
	}

	newCtx, newTicket, ok := s.Begin(context.Background(), "user:dre", 2)
	if !ok {
		t.Fatal("expected newer request to begin")
	}

	if oldCtx.Err() == nil {
		t.Error("expected older request context to be cancelled")
	}
	if newCtx.Err() != nil {
		t.Error("expected newer request context to stay active")
	}
	if oldTicket.Finish() {
		t.Error("expected older request to be stale")
	}
	if !newTicket.Finish() {
		t.Error("expected newer request to be current")
	}
}

func TestRequestSequencer_RejectsReplayedSequence(t *testing.T) {
	s := NewRequestSequencer()

	_, ticket, _ := s.Begin(context.Background(), "user:dre", 5)
	ticket.Finish()

	tests := []struct {
		name string
		seq  int64
		want bool
	}{
		{name: "same sequence", seq: 5, want: false},
		{name: "older sequence", seq: 3, want: false},
		{name: "newer sequence", seq: 6, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, tk, ok := s.Begin(context.Background(), "user:dre", tt.seq)
			if ok != tt.want {
				t.Fatalf("Begin(%d) ok = %v, want %v", tt.seq, ok, tt.want)
			}
			if tk != nil {
				tk.Finish()
			}
		})
	}
}

func TestRequestSequencer_ViewsAreIndependent(t *testing.T) {
	s := NewRequestSequencer()

	dreCtx, dreTicket, _ := s.Begin(context.Background(), "user:dre", 1)
	_, cashTicket, ok := s.Begin(context.Background(), "user:cash-flow", 1)
	if !ok {
		t.Fatal("expected another view to accept its own sequence")
	}

	if dreCtx.Err() != nil {
		t.Error("expected dre request to be unaffected by another view")
	}
	if !dreTicket.Finish() || !cashTicket.Finish() {
		t.Error("expected both requests to be current")
	}
}

func TestRequestSequencer_ForgetsIdleViews(t *testing.T) {
	s := NewRequestSequencer()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for i := 0; i < 50; i++ {
		_, tk, ok := s.Begin(context.Background(), fmt.Sprintf("user-%d:dre", i), 1)
		if !ok {
			t.Fatalf("request %d did not begin", i)
		}
		tk.Finish()
	}
	runningCtx, running, _ := s.Begin(context.Background(), "owner:cash-flow", 1)
	if len(s.views) != 51 {
		t.Fatalf("views = %d, want 51", len(s.views))
	}

	now = now.Add(5 * time.Minute)
	if _, _, ok := s.Begin(context.Background(), "user-0:dre", 1); ok {
		t.Error("expected a replay inside the idle window to be rejected")
	}

	now = now.Add(sequencerIdleTTL)
	_, tk, _ := s.Begin(context.Background(), "user-0:indicators", 1)
	if len(s.views) != 2 {
		t.Errorf("views = %d, want the running view and the new one", len(s.views))
	}
	if runningCtx.Err() != nil {
		t.Error("expected the running request to survive the sweep")
	}
	if !running.Finish() || !tk.Finish() {
		t.Error("expected both requests to be current")
	}
}
