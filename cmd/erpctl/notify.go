package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/dependency"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/email"
)

type notifyCmd struct {
	send bool
}

func (*notifyCmd) Name() string     { return "notify" }
func (*notifyCmd) Synopsis() string { return "run one pass of the notification worker" }
func (*notifyCmd) Usage() string {
	return `erpctl notify [-send]

  Creates notifications for overdue entries, entries due soon and passed
  reminders. With -send the email outbox is flushed afterwards.
`
}

func (c *notifyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.send, "send", false, "Deliver queued emails after the pass")
}

func (c *notifyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, database, err := openDatabase()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer database.Close()

	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Services{EmailSender: sender})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	stats := injector.NotificationWorker.ProcessNow(ctx)
	fmt.Printf("overdue=%d due_soon=%d reminders=%d created=%d\n",
		stats.Overdue, stats.DueSoon, stats.Reminders, stats.Created)

	if c.send {
		injector.EmailWorker.ProcessNow(ctx)
	}
	return subcommands.ExitSuccess
}
