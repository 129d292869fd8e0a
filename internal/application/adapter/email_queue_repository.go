// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the email outbox.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs scheduled up to now, oldest first.
	GetPendingJobs(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// PurgeSent removes sent jobs processed before the cutoff and returns how many were removed.
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}
