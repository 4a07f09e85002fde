package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/config"
	"github.com/dmitrijs2005/certkeeper/internal/client/scanner"
	"github.com/dmitrijs2005/certkeeper/internal/client/services"
	"github.com/dmitrijs2005/certkeeper/internal/client/ui"
	"github.com/dmitrijs2005/certkeeper/internal/client/widgets"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	auth    services.AuthService
	console *ui.Console
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the session store, the backend client, the services and the
// console for an interactive session on stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	return newApp(ctx, c, log, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := client.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	jar, err := client.NewPersistentJar(ctx, c.ServerURL, db, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load session: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerURL, jar, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	theme := ui.DefaultTheme()
	if c.NoColor {
		theme = ui.PlainTheme()
	}

	// A nil interface, not a nil *Device, tells the console there is no reader.
	var device ui.BarcodeScanner
	if c.ScannerDevice != "" {
		device = scanner.NewDevice(c.ScannerDevice, log)
	}

	a := &App{
		config: c,
		log:    log,
		db:     db,
		auth:   services.NewAuthService(api, jar),
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.console = ui.New(ui.Deps{
		Auth:         a.auth,
		Certificates: services.NewCertificateService(api),
		Renewals:     services.NewRenewalService(api),
		Insights:     services.NewInsightsService(api),
		Admin:        services.NewAdminService(api),
		Links:        api,
		Charts:       widgets.NewRenderer(widgets.DefaultWidth, c.NoColor),
		Scanner:      device,
		Confirm: func(prompt string) bool {
			return confirm(a.reader, prompt, a.out)
		},
		Out:      out,
		Theme:    theme,
		ToastTTL: c.ToastTTL,
		Log:      log,
	})
	return a, nil
}

// Run checks the stored session and then serves commands until the user
// exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	printlnFn("certkeeper CLI (type 'help' for commands)")
	if !a.console.CheckSession(ctx) {
		printlnFn("Not logged in. Type 'login' or 'register'.")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, a.reader)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		printlnFn()
	}
}

func (a *App) close(ctx context.Context) {
	if err := a.console.StopScanner(ctx); err != nil {
		a.log.Warn(ctx, "stop scanner on exit", "error", err)
	}
	if err := a.auth.Close(ctx); err != nil {
		a.log.Warn(ctx, "close client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "close session store", "error", err)
	}
}

func (a *App) status() string {
	if !a.console.Authenticated() {
		return "(guest)"
	}
	s := fmt.Sprintf("(%s@%s", a.console.User(), a.console.ActiveSection())
	if a.console.Scanning() {
		s += " scanning"
	}
	return s + ")"
}

func (a *App) isLoggedIn() bool {
	return a.console.Authenticated()
}

func (a *App) isAdmin() bool {
	return a.console.IsAdmin()
}
