package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/bowlsignup/internal/client/router"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	view() router.View
	Navigate(token string) router.View
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Export(ctx context.Context) error
}

// commandViews lists the view each gated command belongs to.
var commandViews = map[string]router.View{
	"signup": router.PublicForm,
	"login":  router.AdminLogin,
	"list":   router.AdminPanel,
	"l":      router.AdminPanel,
	"delete": router.AdminPanel,
	"clear":  router.AdminPanel,
	"export": router.AdminPanel,
}

func helpFor(v router.View) string {
	switch v {
	case router.AdminLogin:
		return "Available commands: login, go <token>, exit"
	case router.AdminPanel:
		return "Available commands: (l)ist, delete <id>, clear, export, go <token>, exit"
	default:
		return "Available commands: signup, go <token>, exit"
	}
}

// runREPL reads commands line by line from reader and dispatches them to a.
// Commands that do not belong to the current view are refused. The loop
// ends on EOF or "exit"/"quit". Handler errors are reported by the handlers
// themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bowl %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if want, gated := commandViews[cmd]; gated && a.view() != want {
			printlnFn(fmt.Sprintf("%q is not available on the %s view", cmd, a.view()))
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpFor(a.view()))

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <token>, e.g. go #/admin")
				continue
			}
			printlnFn("View:", a.Navigate(args[0]).String())

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "delete":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Delete(ctx, id)

		case "clear":
			_ = a.Clear(ctx)

		case "export":
			_ = a.Export(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
