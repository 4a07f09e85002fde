package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
}

func (f *fakeExec) record(call string, args ...string) error {
	for _, a := range args {
		if a != "" {
			call += " " + a
		}
	}
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Show(ctx context.Context, section string) error { return f.record("show", section) }
func (f *fakeExec) Search(ctx context.Context, id string) error    { return f.record("search", id) }
func (f *fakeExec) All(ctx context.Context) error                  { return f.record("all") }
func (f *fakeExec) Delete(ctx context.Context, id string) error    { return f.record("delete", id) }
func (f *fakeExec) Retest(ctx context.Context, id string) error    { return f.record("retest", id) }
func (f *fakeExec) Upload(ctx context.Context) error               { return f.record("upload") }
func (f *fakeExec) Alerts(ctx context.Context) error               { return f.record("alerts") }
func (f *fakeExec) Dismiss(ctx context.Context, n string) error    { return f.record("dismiss", n) }
func (f *fakeExec) Scan(ctx context.Context) error                 { return f.record("scan") }
func (f *fakeExec) Stop(ctx context.Context) error                 { return f.record("stop") }
func (f *fakeExec) SaveQR(ctx context.Context, id, path string) error {
	return f.record("qr", id, path)
}
func (f *fakeExec) SavePDF(ctx context.Context, name, path string) error {
	return f.record("pdf", name, path)
}
func (f *fakeExec) Export(ctx context.Context, path string) error { return f.record("export", path) }
func (f *fakeExec) AddUser(ctx context.Context) error             { return f.record("adduser") }
func (f *fakeExec) Sync(ctx context.Context) error                { return f.record("sync") }

// capturePrints swaps printlnFn for a recorder.
func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func repl(t *testing.T, exec *fakeExec, input ...string) []string {
	t.Helper()
	out := capturePrints(t)
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(strings.Join(input, "\n")+"\n"))
	return *out
}

func TestRunREPL_GuestIsGated(t *testing.T) {
	exec := &fakeExec{}
	out := repl(t, exec, "help", "certs", "delete A-1", "bogus", "exit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, guestHelp)
	assert.Contains(t, out, "Please login first")
	assert.Contains(t, out, "Unknown command: bogus")
	assert.Equal(t, "Bye!", out[len(out)-1])
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}
	repl(t, exec,
		"login",
		"dashboard",
		"certs",
		"go renewals",
		"search A 1",
		"all",
		"upload",
		"delete A-1",
		"retest A-2",
		"alerts",
		"dismiss 3",
		"scan",
		"stop",
		"qr A-1",
		"qr A-1 out.png",
		"pdf cert.pdf",
		"export",
		"export all.csv",
		"logout",
		"certs",
		"quit",
	)

	assert.Equal(t, []string{
		"login",
		"show dashboard",
		"show certificates",
		"show renewals",
		"search A 1",
		"all",
		"upload",
		"delete A-1",
		"retest A-2",
		"alerts",
		"dismiss 3",
		"scan",
		"stop",
		"qr A-1",
		"qr A-1 out.png",
		"pdf cert.pdf",
		"export",
		"export all.csv",
		"logout",
	}, exec.calls)
}

func TestRunREPL_Usage(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	out := repl(t, exec, "go", "search", "delete", "retest", "dismiss", "qr", "pdf", "exit")

	assert.Empty(t, exec.calls)
	assert.Equal(t, []string{
		"Usage: go <section>",
		"Usage: search <asset-id>",
		"Usage: delete <asset-id>",
		"Usage: retest <asset-id>",
		"Usage: dismiss <n>",
		"Usage: qr <asset-id> [file]",
		"Usage: pdf <name> [file]",
	}, withoutPrompts(out[:len(out)-1]))
}

func TestRunREPL_AdminCommands(t *testing.T) {
	user := &fakeExec{loggedIn: true}
	out := repl(t, user, "help", "adduser", "sync", "exit")
	assert.Empty(t, user.calls)
	assert.Contains(t, out, "Admin only")
	assert.NotContains(t, out, adminHelp)

	admin := &fakeExec{loggedIn: true, admin: true}
	out = repl(t, admin, "help", "adduser", "sync", "exit")
	assert.Equal(t, []string{"adduser", "sync"}, admin.calls)
	assert.Contains(t, out, appHelp)
	assert.Contains(t, out, adminHelp)
}

func TestRunREPL_LoginWhileLoggedIn(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	out := repl(t, exec, "login", "register", "exit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Already logged in. Use logout first.")
}

func TestRunREPL_EOFAndCancel(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("certs"))
	assert.Equal(t, []string{"show certificates"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{loggedIn: true}
	runREPL(ctx, exec, func() string { return "" }, rdr("certs\n"))
	assert.Empty(t, exec.calls)
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := repl(t, &fakeExec{}, "exit")
	assert.Equal(t, "ck status> ", out[0])
}

func withoutPrompts(lines []string) []string {
	var out []string
	for _, l := range lines {
		if !strings.HasPrefix(l, "ck ") {
			out = append(out, l)
		}
	}
	return out
}
