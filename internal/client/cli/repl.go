package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Show(ctx context.Context, section string) error
	Search(ctx context.Context, assetID string) error
	All(ctx context.Context) error
	Delete(ctx context.Context, assetID string) error
	Retest(ctx context.Context, assetID string) error
	Upload(ctx context.Context) error

	Alerts(ctx context.Context) error
	Dismiss(ctx context.Context, seq string) error

	Scan(ctx context.Context) error
	Stop(ctx context.Context) error

	SaveQR(ctx context.Context, assetID, path string) error
	SavePDF(ctx context.Context, name, path string) error
	Export(ctx context.Context, path string) error

	AddUser(ctx context.Context) error
	Sync(ctx context.Context) error
}

const (
	guestHelp = "Available commands: register, login, exit"
	appHelp   = "Available commands: dashboard, certs, renewals, profile, downloads, go <section>, search <id>, all, upload, delete <id>, retest <id>, alerts, dismiss <n>, scan, stop, qr <id> [file], pdf <name> [file], export [file], logout, exit"
	adminHelp = "Admin commands: adduser, sync"
)

// sectionAliases maps menu commands to section ids.
var sectionAliases = map[string]string{
	"dashboard": "dashboard",
	"certs":     "certificates",
	"renewals":  "renewals",
	"profile":   "profile",
	"downloads": "downloads",
}

// runREPL starts the read–eval–print loop of the certkeeper CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Commands other than help, register, login
// and exit need an active session. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ck %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn(guestHelp)
			case a.isAdmin():
				printlnFn(appHelp)
				printlnFn(adminHelp)
			default:
				printlnFn(appHelp)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "register", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use logout first.")
				continue
			}
			if cmd == "login" {
				_ = a.Login(ctx)
			} else {
				_ = a.Register(ctx)
			}
			continue
		}

		if !a.isLoggedIn() {
			if isAppCommand(cmd) {
				printlnFn("Please login first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		dispatch(ctx, a, cmd, args)
	}
}

func isAppCommand(cmd string) bool {
	if _, ok := sectionAliases[cmd]; ok {
		return true
	}
	switch cmd {
	case "go", "search", "all", "upload", "delete", "retest", "alerts", "dismiss",
		"scan", "stop", "qr", "pdf", "export", "adduser", "sync", "logout":
		return true
	}
	return false
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	if section, ok := sectionAliases[cmd]; ok {
		_ = a.Show(ctx, section)
		return
	}

	switch cmd {
	case "go":
		if len(args) == 0 {
			printlnFn("Usage: go <section>")
			return
		}
		_ = a.Show(ctx, args[0])

	case "search":
		if len(args) == 0 {
			printlnFn("Usage: search <asset-id>")
			return
		}
		_ = a.Search(ctx, strings.Join(args, " "))

	case "all":
		_ = a.All(ctx)

	case "upload":
		_ = a.Upload(ctx)

	case "delete":
		if len(args) == 0 {
			printlnFn("Usage: delete <asset-id>")
			return
		}
		_ = a.Delete(ctx, args[0])

	case "retest":
		if len(args) == 0 {
			printlnFn("Usage: retest <asset-id>")
			return
		}
		_ = a.Retest(ctx, args[0])

	case "alerts":
		_ = a.Alerts(ctx)

	case "dismiss":
		if len(args) == 0 {
			printlnFn("Usage: dismiss <n>")
			return
		}
		_ = a.Dismiss(ctx, args[0])

	case "scan":
		_ = a.Scan(ctx)

	case "stop":
		_ = a.Stop(ctx)

	case "qr":
		if len(args) == 0 {
			printlnFn("Usage: qr <asset-id> [file]")
			return
		}
		_ = a.SaveQR(ctx, args[0], optional(args, 1))

	case "pdf":
		if len(args) == 0 {
			printlnFn("Usage: pdf <name> [file]")
			return
		}
		_ = a.SavePDF(ctx, args[0], optional(args, 1))

	case "export":
		_ = a.Export(ctx, optional(args, 0))

	case "adduser", "sync":
		if !a.isAdmin() {
			printlnFn("Admin only")
			return
		}
		if cmd == "adduser" {
			_ = a.AddUser(ctx)
		} else {
			_ = a.Sync(ctx)
		}

	case "logout":
		_ = a.Logout(ctx)

	default:
		printlnFn("Unknown command:", cmd)
	}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
