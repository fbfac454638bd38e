package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Fprintln

// execIface is the command surface dispatch needs. App satisfies it; tests
// use a lightweight stub.
type execIface interface {
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	Toggle(ctx context.Context, field string) error
	Swipe(ctx context.Context, offset string) error
	Goto(ctx context.Context, position string) error
	Show(ctx context.Context) error
	List(ctx context.Context) error
}

const helpText = `Available commands:
  n, next              show the next card
  p, prev, previous    show the previous card
  t, toggle <field>    expand or collapse a row (ID, UID, Username, Email, Password or 1-5)
  1..5                 same as toggle <row>
  swipe <offset>       report where a drag settled, in columns
  goto <n>             swipe to card n
  show                 redraw the current card
  l, list              list all loaded users
  help                 show this help
  exit, quit           leave the program`

// dispatch runs one input line against a. Handler errors are printed as a
// one-line hint and never end the session. It reports whether the user asked
// to quit.
func dispatch(ctx context.Context, a execIface, line string, w io.Writer) (quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	arg := strings.Join(parts[1:], " ")

	var err error
	switch cmd {
	case "help", "h", "?":
		printlnFn(w, helpText)

	case "n", "next":
		err = a.Next(ctx)

	case "p", "prev", "previous":
		err = a.Previous(ctx)

	case "t", "toggle":
		if arg == "" {
			printlnFn(w, "Usage: toggle <field>")
			return false
		}
		err = a.Toggle(ctx, arg)

	case "1", "2", "3", "4", "5":
		err = a.Toggle(ctx, cmd)

	case "swipe":
		if arg == "" {
			printlnFn(w, "Usage: swipe <offset>")
			return false
		}
		err = a.Swipe(ctx, arg)

	case "goto":
		if arg == "" {
			printlnFn(w, "Usage: goto <n>")
			return false
		}
		err = a.Goto(ctx, arg)

	case "show":
		err = a.Show(ctx)

	case "l", "list":
		err = a.List(ctx)

	case "exit", "quit", "q":
		printlnFn(w, "Bye!")
		return true

	default:
		printlnFn(w, "Unknown command:", parts[0])
	}

	if err != nil {
		printlnFn(w, "error:", err)
	}
	return false
}
