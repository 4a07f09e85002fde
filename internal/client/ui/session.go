package ui

import (
	"sync"

	"github.com/dmitrijs2005/certkeeper/internal/client/models"
	"github.com/dmitrijs2005/certkeeper/internal/common"
)

// Shell is which top-level view the user is on.
type Shell int

const (
	ShellLogin Shell = iota
	ShellApp
)

// Session is the client-side state of one login. It is reset on activation
// and on logout.
type Session struct {
	mu          sync.Mutex
	shell       Shell
	user        string
	alertsShown bool
	draft       *models.UploadForm
	statusChart Chart
	typeChart   Chart
}

// Activate switches to the application shell for user.
func (s *Session) Activate(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shell = ShellApp
	s.user = user
	s.alertsShown = false
}

// Reset returns to the login shell and hands back the chart handles, which
// the caller must destroy.
func (s *Session) Reset() []Chart {
	s.mu.Lock()
	defer s.mu.Unlock()

	charts := liveCharts(s.statusChart, s.typeChart)
	s.shell = ShellLogin
	s.user = ""
	s.alertsShown = false
	s.draft = nil
	s.statusChart, s.typeChart = nil, nil
	return charts
}

func (s *Session) Shell() Shell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell
}

func (s *Session) Authenticated() bool {
	return s.Shell() == ShellApp
}

func (s *Session) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAdmin toggles admin affordances only; the backend enforces access.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell == ShellApp && s.user == common.AdminUserName
}

func (s *Session) AlertsShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alertsShown
}

func (s *Session) SetAlertsShown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertsShown = true
}

// Draft returns the last unsent upload form.
func (s *Session) Draft() (models.UploadForm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return models.UploadForm{}, false
	}
	return *s.draft, true
}

func (s *Session) SetDraft(f models.UploadForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &f
}

func (s *Session) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// SwapCharts installs new chart handles and returns the previous ones.
func (s *Session) SwapCharts(status, byType Chart) []Chart {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := liveCharts(s.statusChart, s.typeChart)
	s.statusChart, s.typeChart = status, byType
	return old
}

func liveCharts(cs ...Chart) []Chart {
	out := make([]Chart, 0, len(cs))
	for _, c := range cs {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
