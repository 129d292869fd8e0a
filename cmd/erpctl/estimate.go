package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence"
)

type estimateCmd struct {
	flags reportFlags
}

func (*estimateCmd) Name() string     { return "estimate" }
func (*estimateCmd) Synopsis() string { return "project revenue and expense to the end of a period" }
func (*estimateCmd) Usage() string {
	return `erpctl estimate -company <id> [-start <date> -end <date>] [-basis competence|cash] [-raw]

  Projects the running period from its daily average. Defaults to the
  current month.
`
}

func (c *estimateCmd) SetFlags(f *flag.FlagSet) {
	c.flags.register(f)
}

func (c *estimateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := c.flags.session()
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	var start, end time.Time
	if c.flags.start != "" || c.flags.end != "" {
		r, err := valueobject.ParseDateRange(c.flags.start, c.flags.end)
		if err != nil {
			fail(err)
			return subcommands.ExitUsageError
		}
		start, end = r.Start, r.End
	}

	_, database, err := openDatabase()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer database.Close()

	uc := dashboard.NewGetEstimateUseCase(persistence.NewDashboardRepository(database.DB()), dashboard.SystemClock)
	out, err := uc.Execute(ctx, dashboard.GetEstimateInput{
		Session:   session,
		StartDate: start,
		EndDate:   end,
		Basis:     dashboard.Basis(c.flags.basis),
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	printMarkdown(estimateMarkdown(out), c.flags.raw)
	return subcommands.ExitSuccess
}

func estimateMarkdown(out *dashboard.GetEstimateOutput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Estimate %s\n\n", out.Range)
	fmt.Fprintf(&sb, "Day %d of %d (today is %s)\n\n",
		out.Revenue.DaysElapsed, out.Revenue.TotalDays, out.Today.Format(valueobject.DateLayout))

	sb.WriteString("| | Current | Daily average | Estimated |\n|:---|---:|---:|---:|\n")
	estimateRow(&sb, "Revenue", out.Revenue)
	estimateRow(&sb, "Expense", out.Expense)

	fmt.Fprintf(&sb, "\n**Estimated result: %s**\n", valueobject.FormatBRL(out.EstimatedResult))
	return sb.String()
}

func estimateRow(sb *strings.Builder, label string, e dashboard.EstimateResult) {
	fmt.Fprintf(sb, "| %s | %s | %s | %s |\n", label,
		valueobject.FormatBRL(e.Current),
		valueobject.FormatBRL(e.DailyAverage),
		valueobject.FormatBRL(e.EstimatedTotal),
	)
}
