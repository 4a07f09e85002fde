// Package ui is the presentation layer of the certkeeper client: a session
// guard, a router over named screen regions, a toast queue and the data
// panels and actions behind every section.
package ui

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/client/services"
	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
)

// Deps are the collaborators of a Console. Scanner and Charts may be nil;
// the features using them then report themselves unavailable.
type Deps struct {
	Auth         services.AuthService
	Certificates services.CertificateService
	Renewals     services.RenewalService
	Insights     services.InsightsService
	Admin        services.AdminService
	Links        client.Links

	Charts  ChartRenderer
	Scanner BarcodeScanner
	Confirm Confirmer

	Out      io.Writer
	Theme    Theme
	ToastTTL time.Duration
	Log      logging.Logger
}

// Console is the whole client screen. Its methods are called from the
// command loop; scanner decodes and toast timers call in from their own
// goroutines.
type Console struct {
	auth     services.AuthService
	certs    services.CertificateService
	renewals services.RenewalService
	insights services.InsightsService
	admin    services.AdminService
	links    client.Links
	charts   ChartRenderer
	confirm  Confirmer
	theme    Theme
	log      logging.Logger

	screen  *Screen
	router  *Router
	toasts  *Toaster
	session *Session
}

func New(d Deps) *Console {
	log := d.Log
	if log == nil {
		log = logging.Nop()
	}
	out := d.Out
	if out == nil {
		out = io.Discard
	}
	confirm := d.Confirm
	if confirm == nil {
		confirm = func(string) bool { return false }
	}

	screen := NewScreen(out, d.Theme)
	c := &Console{
		auth:     d.Auth,
		certs:    d.Certificates,
		renewals: d.Renewals,
		insights: d.Insights,
		admin:    d.Admin,
		links:    d.Links,
		charts:   d.Charts,
		confirm:  confirm,
		theme:    d.Theme,
		log:      log,
		screen:   screen,
		router:   NewRouter(screen, d.Scanner, log),
		toasts:   NewToaster(screen, d.Theme, d.ToastTTL),
		session:  &Session{},
	}
	c.registerPanels()
	c.drawStatic()
	return c
}

func (c *Console) Authenticated() bool { return c.session.Authenticated() }
func (c *Console) User() string { return c.session.User() }
func (c *Console) IsAdmin() bool { return c.session.IsAdmin() }

func (c *Console) ActiveSection() Section { return c.router.Active() }

// Region returns the current content of a section's region.
func (c *Console) Region(id Section) []string { return c.screen.Lines(id) }

func (c *Console) Toasts() []Toast { return c.toasts.Active() }
func (c *Console) Dismiss(seq int) bool { return c.toasts.Dismiss(seq) }
func (c *Console) Scanning() bool { return c.router.Scanning() }
func (c *Console) Print(lines ...string) { c.screen.Print(lines...) }

// Draft is the upload form kept from the last failed upload.
func (c *Console) Draft() (models.UploadForm, bool) {
	return c.session.Draft()
}

// Message turns err into text for the user. Validation errors show their
// own text, backend rejections their message, transport failures a fixed
// notice, and anything else fallback.
func Message(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrValidation):
		_, text, found := strings.Cut(err.Error(), common.ErrValidation.Error()+": ")
		if !found || text == "" {
			return fallback
		}
		return strings.ToUpper(text[:1]) + text[1:] + "."
	case errors.Is(err, client.ErrUnavailable):
		return connectionFailed
	default:
		return client.UserMessage(err, fallback)
	}
}

const connectionFailed = "Server connection failed."
