package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence"
)

type dreCmd struct {
	flags reportFlags
}

func (*dreCmd) Name() string     { return "dre" }
func (*dreCmd) Synopsis() string { return "display the income statement of a period" }
func (*dreCmd) Usage() string {
	return `erpctl dre -company <id> -start <date> -end <date> [-basis competence|cash] [-raw]

  Displays the DRE (income statement) of a company for the given period.
`
}

func (c *dreCmd) SetFlags(f *flag.FlagSet) {
	c.flags.register(f)
}

func (c *dreCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := c.flags.session()
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}
	r, err := valueobject.ParseDateRange(c.flags.start, c.flags.end)
	if err != nil {
		fail(err)
		return subcommands.ExitUsageError
	}

	_, database, err := openDatabase()
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}
	defer database.Close()

	uc := dashboard.NewGetDREUseCase(persistence.NewDashboardRepository(database.DB()))
	out, err := uc.Execute(ctx, dashboard.GetDREInput{
		Session:   session,
		StartDate: r.Start,
		EndDate:   r.End,
		Basis:     dashboard.Basis(c.flags.basis),
	})
	if err != nil {
		fail(err)
		return subcommands.ExitFailure
	}

	printMarkdown(dreMarkdown(out), c.flags.raw)
	return subcommands.ExitSuccess
}

func dreMarkdown(out *dashboard.GetDREOutput) string {
	d := out.DRE
	var sb strings.Builder

	fmt.Fprintf(&sb, "# DRE %s\n\n", d.Range)
	fmt.Fprintf(&sb, "Basis: %s\n\n", out.Basis)

	sb.WriteString("| Line | Amount |\n|:---|---:|\n")
	row(&sb, "**Gross revenue**", d.GrossRevenue)
	for _, b := range d.RevenueBuckets {
		row(&sb, "&nbsp;&nbsp;"+b.Name, b.Total)
	}
	row(&sb, "(-) Operating expense", d.OperatingExpense)
	row(&sb, "**(=) Contribution margin**", d.ContributionMargin)
	row(&sb, "(-) Fixed cost", d.FixedCost)
	row(&sb, "**(=) Net result**", d.NetResult)

	sb.WriteString("\n## Ratios\n\n")
	fmt.Fprintf(&sb, "* Contribution margin: %.2f%%\n", d.Ratios.ContributionMargin)
	fmt.Fprintf(&sb, "* Net margin: %.2f%%\n", d.Ratios.NetMargin)
	fmt.Fprintf(&sb, "* Expense ratio: %.2f%%\n", d.Ratios.ExpenseRatio)
	fmt.Fprintf(&sb, "* Fixed cost ratio: %.2f%%\n", d.Ratios.FixedCostRatio)

	if !d.UnclassifiedVariableCost.Total.IsZero() {
		fmt.Fprintf(&sb, "\n> %s classified as variable cost is not part of the statement.\n",
			valueobject.FormatBRL(d.UnclassifiedVariableCost.Total))
	}
	return sb.String()
}

func row(sb *strings.Builder, label string, amount decimal.Decimal) {
	fmt.Fprintf(sb, "| %s | %s |\n", label, valueobject.FormatBRL(amount))
}
