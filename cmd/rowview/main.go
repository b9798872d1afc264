// Command rowview browses the result of a SQLite query through a
// deletion-filtered view. Rows can be hidden by position or by column value
// without touching the database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"
	_ "modernc.org/sqlite"

	"github.com/hupe1980/rowview"
	"github.com/hupe1980/rowview/source"
)

const version = "0.1.0"

// CLI defines the command-line interface for rowview.
var CLI struct {
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Minimum log level"`

	Dump    DumpCmd    `cmd:"" help:"Print the rows that survive the given deletions"`
	Shell   ShellCmd   `cmd:"" help:"Navigate and edit the view interactively"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// QueryFlags selects the rows the view is built over.
type QueryFlags struct {
	DB       string `name:"db" required:"" type:"path" help:"SQLite database file"`
	Query    string `name:"query" short:"q" required:"" help:"SELECT statement producing the rows"`
	Strategy string `name:"strategy" default:"surviving" enum:"surviving,skip" help:"Index mapping strategy"`
}

// open runs the query and wraps the result in a Cursor.
func (f *QueryFlags) open(ctx context.Context, logger *rowview.Logger, deleted []int) (*rowview.Cursor, error) {
	db, err := sql.Open("sqlite", f.DB)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.DB, err)
	}
	defer db.Close()

	tbl, err := source.Query(ctx, db, f.Query)
	if err != nil {
		return nil, err
	}

	strategy := rowview.StrategySurviving
	if f.Strategy == "skip" {
		strategy = rowview.StrategySkip
	}

	return rowview.New(tbl,
		rowview.WithStrategy(strategy),
		rowview.WithLogger(logger),
		rowview.WithDeleted(deleted...),
	), nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("rowview version %s\n", version)
	return nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rowview"),
		kong.Description("Deletion-filtered views over SQLite query results"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logger := rowview.NewTextLogger(parseLevel(CLI.LogLevel))
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
