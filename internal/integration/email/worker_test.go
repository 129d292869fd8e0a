package email

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/email/templates"
)

type memoryQueue struct {
	mu     sync.Mutex
	jobs   map[uuid.UUID]*entity.EmailJob
	purged []time.Time
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) && len(out) < limit {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) Update(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) PurgeSent(_ context.Context, before time.Time) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.purged = append(q.purged, before)
	return 0, nil
}

func (q *memoryQueue) get(id uuid.UUID) *entity.EmailJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.jobs[id]
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender adapter.EmailSender, now time.Time) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewWorker(queue, sender, renderer, WorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		Retention:    24 * time.Hour,
		Now:          func() time.Time { return now },
	})
}

func TestService_QueueNotificationEmail(t *testing.T) {
	queue := newMemoryQueue()
	svc := NewService(queue, "https://app.example.com/")

	err := svc.QueueNotificationEmail(context.Background(), adapter.QueueNotificationInput{
		NotificationID: "n-1",
		UserEmail:      "ana@example.com",
		UserName:       "Ana",
		CompanyName:    "Padaria Central",
		Title:          "Conta vencida",
		Message:        "Aluguel venceu.",
		Amount:         "R$ 1.500,00",
		Link:           "/entries/42",
	})
	if err != nil {
		t.Fatalf("QueueNotificationEmail() error = %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
	}
	for _, job := range queue.jobs {
		if job.TemplateType != entity.TemplateNotification {
			t.Errorf("TemplateType = %s", job.TemplateType)
		}
		if job.Subject != "[Padaria Central] Conta vencida" {
			t.Errorf("Subject = %q", job.Subject)
		}
		if job.TemplateData["link"] != "https://app.example.com/entries/42" {
			t.Errorf("link = %q", job.TemplateData["link"])
		}
	}
}

func TestWorker_ProcessNow(t *testing.T) {
	now := time.Now().UTC().Add(time.Hour).Truncate(time.Second)

	t.Run("sends pending job and marks it sent", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		svc := NewService(queue, "https://app.example.com")
		if err := svc.QueuePasswordResetEmail(context.Background(), adapter.QueuePasswordResetInput{
			UserEmail: "ana@example.com",
			UserName:  "Ana",
			ResetURL:  "https://app.example.com/reset?token=t",
			ExpiresIn: "1 hora",
		}); err != nil {
			t.Fatalf("QueuePasswordResetEmail() error = %v", err)
		}

		w := newTestWorker(t, queue, sender, now)
		w.ProcessNow(context.Background())

		sent := sender.Sent()
		if len(sent) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sent))
		}
		if !strings.Contains(sent[0].HTML, "token=t") {
			t.Error("rendered HTML should contain the reset URL")
		}
		for _, job := range queue.jobs {
			if job.Status != entity.EmailStatusSent {
				t.Errorf("Status = %s, want sent", job.Status)
			}
			if job.ProviderID != "mock-1" {
				t.Errorf("ProviderID = %q", job.ProviderID)
			}
			if job.ProcessedAt == nil || !job.ProcessedAt.Equal(now) {
				t.Errorf("ProcessedAt = %v, want %v", job.ProcessedAt, now)
			}
		}
	})

	t.Run("temporary failure reschedules", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("rate limited"), false)

		job := entity.NewEmailJob(entity.TemplateNotification, "ana@example.com", "Ana", "Aviso", map[string]string{"title": "Aviso"})
		job.ScheduledAt = now
		_ = queue.Create(context.Background(), job)

		w := newTestWorker(t, queue, sender, now)
		w.ProcessNow(context.Background())

		got := queue.get(job.ID)
		if got.Status != entity.EmailStatusPending {
			t.Errorf("Status = %s, want pending", got.Status)
		}
		if got.Attempts != 1 {
			t.Errorf("Attempts = %d, want 1", got.Attempts)
		}
		if !got.ScheduledAt.After(now) {
			t.Errorf("ScheduledAt = %v, want after %v", got.ScheduledAt, now)
		}
	})

	t.Run("permanent failure closes job", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("422 validation"), true)

		job := entity.NewEmailJob(entity.TemplateNotification, "bad", "Ana", "Aviso", nil)
		job.ScheduledAt = now
		_ = queue.Create(context.Background(), job)

		w := newTestWorker(t, queue, sender, now)
		w.ProcessNow(context.Background())

		if got := queue.get(job.ID); got.Status != entity.EmailStatusFailed {
			t.Errorf("Status = %s, want failed", got.Status)
		}
	})

	t.Run("unknown template fails permanently", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()

		job := entity.NewEmailJob(entity.EmailTemplateType("legacy"), "ana@example.com", "Ana", "Aviso", nil)
		job.ScheduledAt = now
		_ = queue.Create(context.Background(), job)

		w := newTestWorker(t, queue, sender, now)
		w.ProcessNow(context.Background())

		got := queue.get(job.ID)
		if got.Status != entity.EmailStatusFailed {
			t.Errorf("Status = %s, want failed", got.Status)
		}
		if len(sender.Sent()) != 0 {
			t.Error("nothing should be sent")
		}
	})

	t.Run("future jobs wait", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := NewMockEmailSender()

		job := entity.NewEmailJob(entity.TemplateNotification, "ana@example.com", "Ana", "Aviso", nil)
		job.ScheduledAt = now.Add(time.Minute)
		_ = queue.Create(context.Background(), job)

		w := newTestWorker(t, queue, sender, now)
		w.ProcessNow(context.Background())

		if len(sender.Sent()) != 0 {
			t.Error("scheduled job should not be sent yet")
		}
	})
}

func TestWorker_PurgeIsThrottled(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	queue := newMemoryQueue()
	w := newTestWorker(t, queue, NewMockEmailSender(), now)

	w.purge(context.Background())
	w.purge(context.Background())

	if len(queue.purged) != 1 {
		t.Fatalf("expected 1 purge, got %d", len(queue.purged))
	}
	if want := now.Add(-24 * time.Hour); !queue.purged[0].Equal(want) {
		t.Errorf("cutoff = %v, want %v", queue.purged[0], want)
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("422 Unprocessable"), true},
		{errors.New("Forbidden"), true},
		{errors.New("429 too many requests"), false},
		{errors.New("502 bad gateway"), false},
	}
	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			if got := isPermanentError(tt.err); got != tt.want {
				t.Errorf("isPermanentError() = %v, want %v", got, tt.want)
			}
		})
	}
}
