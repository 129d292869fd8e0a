// Command erpctl prints company reports and runs maintenance jobs against
// the ERP database from a terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&dreCmd{}, "reports")
	commander.Register(&estimateCmd{}, "reports")
	commander.Register(&notifyCmd{}, "jobs")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
