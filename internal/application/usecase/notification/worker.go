package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	PollInterval  time.Duration
	BatchSize     int
	DueSoonWindow time.Duration
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:  time.Minute,
		BatchSize:     100,
		DueSoonWindow: 72 * time.Hour,
	}
}

// WorkerDeps groups the collaborators of the worker. EmailService and
// Publisher are optional.
type WorkerDeps struct {
	Entries       adapter.EntryRepository
	Reminders     adapter.ReminderRepository
	Notifications adapter.NotificationRepository
	Users         adapter.UserRepository
	Companies     adapter.CompanyRepository
	EmailService  adapter.EmailService
	Publisher     adapter.EventPublisher
}

// RunStats summarizes one poll.
type RunStats struct {
	Overdue   int
	DueSoon   int
	Reminders int
	Created   int
}

// Worker turns overdue entries, entries due soon and passed reminders into
// notifications, mirrors them by e-mail and publishes notification.created.
type Worker struct {
	deps   WorkerDeps
	config WorkerConfig
}

// NewWorker creates a new notification worker.
func NewWorker(deps WorkerDeps, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.DueSoonWindow <= 0 {
		config.DueSoonWindow = defaults.DueSoonWindow
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Worker{
		deps:   deps,
		config: config,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.config.PollInterval,
		"due_soon_window", w.config.DueSoonWindow,
	)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	w.ProcessNow(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.ProcessNow(ctx)
		}
	}
}

// ProcessNow runs one poll immediately. Each step logs and skips its own
// failures so one broken step does not block the others.
func (w *Worker) ProcessNow(ctx context.Context) RunStats {
	run := &poll{
		Worker:    w,
		now:       w.config.Now().UTC(),
		users:     make(map[uuid.UUID][]*entity.User),
		companies: make(map[uuid.UUID]string),
	}
	var stats RunStats

	overdue, created, err := run.overdueEntries(ctx)
	if err != nil {
		slog.Error("Failed to process overdue entries", "error", err)
	}
	stats.Overdue = overdue
	stats.Created += created

	dueSoon, created, err := run.dueSoonEntries(ctx)
	if err != nil {
		slog.Error("Failed to process entries due soon", "error", err)
	}
	stats.DueSoon = dueSoon
	stats.Created += created

	reminders, created, err := run.dueReminders(ctx)
	if err != nil {
		slog.Error("Failed to process reminders", "error", err)
	}
	stats.Reminders = reminders
	stats.Created += created

	if stats.Created > 0 {
		slog.Info("Notifications created",
			"overdue", stats.Overdue,
			"due_soon", stats.DueSoon,
			"reminders", stats.Reminders,
			"created", stats.Created,
		)
	}
	return stats
}

// poll carries the per-run clock and lookup caches.
type poll struct {
	*Worker
	now       time.Time
	users     map[uuid.UUID][]*entity.User
	companies map[uuid.UUID]string
}

func (p *poll) today() time.Time {
	return entity.TruncateDay(p.now)
}

// overdueEntries notifies every user of the company about each pending entry
// past its due date and flips those entries to overdue. It pages until the
// scan is drained; flipped entries leave the scan.
func (p *poll) overdueEntries(ctx context.Context) (int, int, error) {
	total, created := 0, 0
	for {
		entries, err := p.deps.Entries.FindPendingDueBefore(ctx, p.today(), p.config.BatchSize)
		if err != nil {
			return total, created, fmt.Errorf("failed to find overdue entries: %w", err)
		}

		ids := make([]uuid.UUID, 0, len(entries))
		for _, e := range entries {
			n, err := p.notifyCompany(ctx, e, entity.NotificationKindEntryOverdue, overdueTitle(e), entryMessage(e, "venceu em"), "")
			if err != nil {
				slog.Error("Failed to notify overdue entry", "entry_id", e.ID, "error", err)
				continue
			}
			created += n
			ids = append(ids, e.ID)
		}
		if len(ids) == 0 {
			return total, created, nil
		}
		if err := p.deps.Entries.MarkOverdue(ctx, ids); err != nil {
			return total, created, fmt.Errorf("failed to mark entries overdue: %w", err)
		}
		total += len(ids)
		if len(entries) < p.config.BatchSize {
			return total, created, nil
		}
	}
}

// dueSoonEntries notifies about pending entries due within the window, once
// per due date. Announced entries are stamped and leave the scan, so every
// entry of the window is reached however many there are.
func (p *poll) dueSoonEntries(ctx context.Context) (int, int, error) {
	from := p.today()
	to := entity.TruncateDay(p.now.Add(p.config.DueSoonWindow))

	total, created := 0, 0
	for {
		entries, err := p.deps.Entries.FindPendingDueBetween(ctx, from, to, p.config.BatchSize)
		if err != nil {
			return total, created, fmt.Errorf("failed to find entries due soon: %w", err)
		}

		ids := make([]uuid.UUID, 0, len(entries))
		for _, e := range entries {
			dueDay := e.DueDate.Format(valueobject.DateLayout)
			n, err := p.notifyCompany(ctx, e, entity.NotificationKindEntryDueSoon, dueSoonTitle(e), entryMessage(e, "vence em"), dueDay)
			if err != nil {
				slog.Error("Failed to notify entry due soon", "entry_id", e.ID, "error", err)
				continue
			}
			created += n
			ids = append(ids, e.ID)
		}
		if len(ids) == 0 {
			return total, created, nil
		}
		if err := p.deps.Entries.MarkDueSoonNotified(ctx, ids, p.now); err != nil {
			return total, created, fmt.Errorf("failed to mark entries announced: %w", err)
		}
		total += len(ids)
		if len(entries) < p.config.BatchSize {
			return total, created, nil
		}
	}
}

// dueReminders notifies the owner of every reminder whose time has passed.
func (p *poll) dueReminders(ctx context.Context) (int, int, error) {
	reminders, err := p.deps.Reminders.FindDueUnnotified(ctx, p.now, p.config.BatchSize)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to find due reminders: %w", err)
	}
	if len(reminders) == 0 {
		return 0, 0, nil
	}

	created := 0
	ids := make([]uuid.UUID, 0, len(reminders))
	for _, r := range reminders {
		user, err := p.deps.Users.FindByID(ctx, r.UserID)
		if err != nil {
			slog.Error("Failed to load reminder owner", "reminder_id", r.ID, "error", err)
			continue
		}

		link := "/reminders"
		if r.EntryID != nil {
			link = "/entries/" + r.EntryID.String()
		}
		n := entity.NewNotification(r.CompanyID, r.UserID, entity.NotificationKindReminder, r.Title, r.Description, link, "reminder:"+r.ID.String())
		ok, err := p.deliver(ctx, n, user, "", "")
		if err != nil {
			slog.Error("Failed to notify reminder", "reminder_id", r.ID, "error", err)
			continue
		}
		if ok {
			created++
		}
		ids = append(ids, r.ID)
	}

	if len(ids) == 0 {
		return 0, created, nil
	}
	if err := p.deps.Reminders.MarkNotified(ctx, ids, p.now); err != nil {
		return len(ids), created, fmt.Errorf("failed to mark reminders notified: %w", err)
	}
	return len(ids), created, nil
}

// notifyCompany creates one notification per user of the entry's company.
// A non-empty dedupSuffix makes the notification repeatable for a new value,
// such as a new due date.
func (p *poll) notifyCompany(ctx context.Context, e *entity.LedgerEntry, kind entity.NotificationKind, title, message, dedupSuffix string) (int, error) {
	users, err := p.companyUsers(ctx, e.CompanyID)
	if err != nil {
		return 0, err
	}

	amount := valueobject.FormatBRL(e.Amount)
	dueDate := e.DueDate.Format("02/01/2006")
	created := 0
	for _, u := range users {
		dedupKey := fmt.Sprintf("%s:%s:%s", kind, e.ID, u.ID)
		if dedupSuffix != "" {
			dedupKey += ":" + dedupSuffix
		}
		n := entity.NewNotification(e.CompanyID, u.ID, kind, title, message, "/entries/"+e.ID.String(), dedupKey)
		ok, err := p.deliver(ctx, n, u, amount, dueDate)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// deliver stores the notification and, when it is new, mirrors it by e-mail
// and publishes the event. E-mail and publish failures are only logged.
func (p *poll) deliver(ctx context.Context, n *entity.Notification, user *entity.User, amount, dueDate string) (bool, error) {
	created, err := p.deps.Notifications.CreateIfAbsent(ctx, n)
	if err != nil {
		return false, fmt.Errorf("failed to create notification: %w", err)
	}
	if !created {
		return false, nil
	}

	if p.deps.EmailService != nil && user.EmailNotifications {
		err := p.deps.EmailService.QueueNotificationEmail(ctx, adapter.QueueNotificationInput{
			NotificationID: n.ID.String(),
			UserEmail:      user.Email,
			UserName:       user.Name,
			CompanyName:    p.companyName(ctx, n.CompanyID),
			Title:          n.Title,
			Message:        n.Message,
			Amount:         amount,
			DueDate:        dueDate,
			Link:           n.Link,
		})
		if err != nil {
			slog.Warn("Failed to queue notification email",
				"notification_id", n.ID,
				"error", err,
			)
		}
	}

	if p.deps.Publisher != nil {
		event := adapter.NewEvent(adapter.EventNotificationCreated, n.CompanyID, map[string]any{
			"notification_id": n.ID.String(),
			"user_id":         n.UserID.String(),
			"kind":            string(n.Kind),
			"title":           n.Title,
		})
		if err := p.deps.Publisher.Publish(ctx, event); err != nil {
			slog.Warn("Failed to publish notification event",
				"notification_id", n.ID,
				"error", err,
			)
		}
	}
	return true, nil
}

func (p *poll) companyUsers(ctx context.Context, companyID uuid.UUID) ([]*entity.User, error) {
	if users, ok := p.users[companyID]; ok {
		return users, nil
	}
	users, err := p.deps.Users.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company users: %w", err)
	}
	p.users[companyID] = users
	return users, nil
}

func (p *poll) companyName(ctx context.Context, companyID uuid.UUID) string {
	if name, ok := p.companies[companyID]; ok {
		return name
	}
	name := ""
	if company, err := p.deps.Companies.FindByID(ctx, companyID); err == nil {
		name = company.Name
	}
	p.companies[companyID] = name
	return name
}

func overdueTitle(e *entity.LedgerEntry) string {
	if e.Type == entity.EntryTypeRevenue {
		return "Conta a receber vencida"
	}
	return "Conta a pagar vencida"
}

func dueSoonTitle(e *entity.LedgerEntry) string {
	if e.Type == entity.EntryTypeRevenue {
		return "Conta a receber vence em breve"
	}
	return "Conta a pagar vence em breve"
}

func entryMessage(e *entity.LedgerEntry, verb string) string {
	return fmt.Sprintf("%s de %s %s %s", e.Description, valueobject.FormatBRL(e.Amount), verb, e.DueDate.Format("02/01/2006"))
}
