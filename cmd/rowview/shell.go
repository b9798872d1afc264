package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hupe1980/rowview"
)

const helpText = `Commands:
  first | last | next | prev    Move the cursor
  seek N                        Move to logical position N
  move N                        Move by N rows
  pos | count                   Print the cursor position or row count
  dump                          Print the current row
  ls                            Print every row in the view
  del [N]                       Delete logical row N (default: current row)
  where COL=VALUE               Delete rows whose column renders as VALUE
  deleted                       Print the deleted physical positions
  clear                         Restore every deleted row
  help                          Show this text
  exit                          Leave the shell
`

var completer = readline.NewPrefixCompleter(
	readline.PcItem("first"),
	readline.PcItem("last"),
	readline.PcItem("next"),
	readline.PcItem("prev"),
	readline.PcItem("seek"),
	readline.PcItem("move"),
	readline.PcItem("pos"),
	readline.PcItem("count"),
	readline.PcItem("dump"),
	readline.PcItem("ls"),
	readline.PcItem("del"),
	readline.PcItem("where"),
	readline.PcItem("deleted"),
	readline.PcItem("clear"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

var errQuit = errors.New("quit")

// ShellCmd starts the interactive shell.
type ShellCmd struct {
	QueryFlags
}

func (c *ShellCmd) Run(logger *rowview.Logger) error {
	cur, err := c.open(context.Background(), logger, nil)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rowview> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".rowview_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%d rows. Enter help for usage hints.\n", cur.Count())

	s := &session{cur: cur, out: rl.Stdout()}
	for {
		rl.SetPrompt(fmt.Sprintf("rowview[%d/%d]> ", cur.Position(), cur.Count()))

		line, readErr := rl.Readline()
		if readErr != nil {
			if errors.Is(readErr, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			}
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}

		if err := s.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(s.out, "Error: %s\n", err)
		}
	}
}

// session executes shell commands against a cursor.
type session struct {
	cur *rowview.Cursor
	out io.Writer
}

func (s *session) exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "first":
		return s.moved(s.cur.MoveToFirst())
	case "last":
		return s.moved(s.cur.MoveToLast())
	case "next":
		return s.moved(s.cur.MoveToNext())
	case "prev":
		return s.moved(s.cur.MoveToPrevious())
	case "seek", "move":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		if cmd == "seek" {
			return s.moved(s.cur.MoveToPosition(n))
		}
		return s.moved(s.cur.Move(n))
	case "pos":
		fmt.Fprintln(s.out, s.cur.Position())
	case "count":
		fmt.Fprintln(s.out, s.cur.Count())
	case "dump":
		return s.cur.DumpCurrentRow(s.out)
	case "ls":
		return s.cur.ForEach(func(it *rowview.Iterator) error {
			fmt.Fprintf(s.out, "%d: ", it.Position())
			return it.Dump(s.out)
		})
	case "del":
		pos := s.cur.Position()
		if len(args) > 0 {
			n, err := intArg(args)
			if err != nil {
				return err
			}
			pos = n
		}
		if err := s.cur.Delete(pos); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%d rows\n", s.cur.Count())
	case "where":
		if len(args) != 1 {
			return errors.New("usage: where COL=VALUE")
		}
		n, err := removeWhere(s.cur, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "removed %d, %d rows\n", n, s.cur.Count())
	case "deleted":
		fmt.Fprintln(s.out, s.cur.Deleted())
	case "clear":
		s.cur.Clear()
		fmt.Fprintf(s.out, "%d rows\n", s.cur.Count())
	case "help":
		fmt.Fprint(s.out, helpText)
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

// moved prints the current row after a successful move.
func (s *session) moved(ok bool) error {
	if !ok {
		return errors.New("no such row")
	}
	return s.cur.DumpCurrentRow(s.out)
}

func intArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one integer argument")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", args[0])
	}
	return n, nil
}
