package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Reset(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Tabs(ctx context.Context) error
	Open(ctx context.Context, tab string) error
	Can(ctx context.Context, role string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on end of input or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - register       create a farmer account
//	  - reset          reset a forgotten password
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - whoami         show the signed-in account
//	  - profile        show the profile
//	  - edit           edit the profile
//	  - tabs           list the tabs you may open
//	  - open <tab>     open a dashboard tab
//	  - can <role>     check a role permission
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Handler errors are printed in their user-facing form and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "farm %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if a.isLoggedIn() {
			err = dispatchSession(ctx, a, cmd, args, w)
		} else {
			err = dispatchAnonymous(ctx, a, cmd, w)
		}

		if errors.Is(err, errExit) {
			fmt.Fprintln(w, "Bye!")
			return
		}
		if err != nil {
			fmt.Fprintln(w, "Error:", HumanError(err))
		}
	}
}

var errExit = errors.New("exit")

func dispatchAnonymous(ctx context.Context, a execIface, cmd string, w io.Writer) error {
	switch cmd {
	case "help":
		fmt.Fprintln(w, "Available commands: login, register, reset, exit")
	case "login":
		return a.Login(ctx)
	case "register":
		return a.Register(ctx)
	case "reset":
		return a.Reset(ctx)
	case "exit", "quit":
		return errExit
	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
	}
	return nil
}

func dispatchSession(ctx context.Context, a execIface, cmd string, args []string, w io.Writer) error {
	switch cmd {
	case "help":
		fmt.Fprintln(w, "Available commands: whoami, profile, edit, tabs, open <tab>, can <role>, logout, exit")
	case "whoami":
		return a.Whoami(ctx)
	case "profile":
		return a.Profile(ctx)
	case "edit":
		return a.Edit(ctx)
	case "tabs":
		return a.Tabs(ctx)
	case "open":
		if len(args) == 0 {
			fmt.Fprintln(w, "Usage: open <tab>")
			return nil
		}
		return a.Open(ctx, args[0])
	case "can":
		if len(args) == 0 {
			fmt.Fprintln(w, "Usage: can <role>")
			return nil
		}
		return a.Can(ctx, args[0])
	case "logout":
		return a.Logout(ctx)
	case "exit", "quit":
		return errExit
	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
	}
	return nil
}
