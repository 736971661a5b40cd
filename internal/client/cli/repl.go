package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Commands taking an id receive "" when none was typed and prompt for it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Result(ctx context.Context, id string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Test(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

const (
	helpGuest = "Available commands: register, login, (l)ist, show <id>, result <id>, create, edit <id>, test <id>, delete <id>, exit"
	helpUser  = "Available commands: (l)ist, show <id>, result <id>, create, edit <id>, test <id>, delete <id>, logout, exit"
)

// runREPL starts a read-eval-print loop for the CaseKeeper console.
//
// It reads a line from reader, parses the first token as the command and the
// second, if any, as the case id, and dispatches to methods on a. Unknown
// commands are reported back to the user. The loop exits on EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures as notifications.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "ck %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		id := ""
		if len(parts) > 1 {
			id = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpUser)
			} else {
				fmt.Fprintln(w, helpGuest)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, id)

		case "result":
			_ = a.Result(ctx, id)

		case "create", "new":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx, id)

		case "test":
			_ = a.Test(ctx, id)

		case "delete":
			_ = a.Delete(ctx, id)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
