package ui

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// DefaultToastTTL is how long a toast stays active.
const DefaultToastTTL = 5 * time.Second

type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityUrgent
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "OK"
	case SeverityUrgent:
		return "URGENT"
	case SeverityError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Toast is a transient message. Seq identifies it for dismiss; AssetID,
// when set, enables the retest follow-up.
type Toast struct {
	Seq      int
	Severity Severity
	Message  string
	AssetID  string
}

type toastEntry struct {
	Toast
	timer *time.Timer
}

// Toaster prints toasts as they arrive and keeps them active until their
// TTL passes or they are dismissed. Removal never touches what was printed.
type Toaster struct {
	mu     sync.Mutex
	screen *Screen
	theme  Theme
	ttl    time.Duration
	seq    int
	active []*toastEntry
}

func NewToaster(screen *Screen, theme Theme, ttl time.Duration) *Toaster {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Toaster{screen: screen, theme: theme, ttl: ttl}
}

func (t *Toaster) Notify(sev Severity, msg string) Toast {
	return t.NotifyAsset(sev, msg, "")
}

// NotifyAsset shows a toast tied to an asset. An identical toast that is
// still active is returned instead of showing a second one.
func (t *Toaster) NotifyAsset(sev Severity, msg, assetID string) Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.active {
		if e.Severity == sev && e.Message == msg && e.AssetID == assetID {
			return e.Toast
		}
	}

	t.seq++
	e := &toastEntry{Toast: Toast{Seq: t.seq, Severity: sev, Message: msg, AssetID: assetID}}
	seq := e.Seq
	e.timer = time.AfterFunc(t.ttl, func() { t.Dismiss(seq) })
	t.active = append(t.active, e)

	t.screen.Print(t.format(e.Toast))
	return e.Toast
}

// Dismiss removes the toast with seq; it reports whether it was active.
func (t *Toaster) Dismiss(seq int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.active, func(e *toastEntry) bool { return e.Seq == seq })
	if i < 0 {
		return false
	}
	t.active[i].timer.Stop()
	t.active = slices.Delete(t.active, i, i+1)
	return true
}

// Active lists the toasts still showing, oldest first.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Toast, 0, len(t.active))
	for _, e := range t.active {
		out = append(out, e.Toast)
	}
	return out
}

func (t *Toaster) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.active {
		e.timer.Stop()
	}
	t.active = nil
}

func (t *Toaster) format(to Toast) string {
	style := t.theme.ToastInfo
	switch to.Severity {
	case SeveritySuccess:
		style = t.theme.ToastSuccess
	case SeverityUrgent:
		style = t.theme.ToastUrgent
	case SeverityError:
		style = t.theme.ToastError
	}

	line := style.Render(fmt.Sprintf("[%s] %s", to.Severity, to.Message))
	hint := fmt.Sprintf("dismiss %d", to.Seq)
	if to.AssetID != "" {
		hint = fmt.Sprintf("retest %s | %s", to.AssetID, hint)
	}
	return line + "  " + t.theme.Muted.Render("("+hint+")")
}
