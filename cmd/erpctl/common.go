package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/bcrezende/erp-rezendetech-sub000/config"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/infra/db"
)

// reportFlags are shared by the report commands.
type reportFlags struct {
	company string
	start   string
	end     string
	basis   string
	raw     bool
}

func (f *reportFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.company, "company", "", "Company ID to report on (required)")
	fs.StringVar(&f.start, "start", "", "First day of the period, YYYY-MM-DD")
	fs.StringVar(&f.end, "end", "", "Last day of the period, YYYY-MM-DD")
	fs.StringVar(&f.basis, "basis", "competence", "Accounting basis (competence, cash)")
	fs.BoolVar(&f.raw, "raw", false, "Print plain markdown instead of rendering it")
}

func (f *reportFlags) session() (entity.Session, error) {
	id, err := uuid.Parse(f.company)
	if err != nil {
		return entity.Session{}, fmt.Errorf("invalid -company %q: %w", f.company, err)
	}
	return entity.Session{CompanyID: id, Role: entity.UserRoleOwner}, nil
}

func openDatabase() (*config.Config, *db.Database, error) {
	cfg := config.Load()
	database, err := db.NewPostgresConnection(&cfg.Database, cfg.Server.Environment)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}

// printMarkdown renders md for the terminal, falling back to the plain text
// when rendering fails.
func printMarkdown(md string, raw bool) {
	if raw {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
