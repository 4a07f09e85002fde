package ui

import (
	"bytes"
	"context"
	"net/http/cookiejar"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/client/client/clienttest"
	"github.com/dmitrijs2005/certkeeper/internal/client/services"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the scanner and timer goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// ---- scanner ----

type fakeScanner struct {
	mu       sync.Mutex
	scanning bool
	starts   int
	stops    int
	startErr error
	onDecode func(string)
	onStop   func()
}

func (s *fakeScanner) Start(ctx context.Context, onDecode func(string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startErr != nil {
		return s.startErr
	}
	s.starts++
	s.scanning = true
	s.onDecode = onDecode
	return nil
}

func (s *fakeScanner) Stop() error {
	s.mu.Lock()
	hook := s.onStop
	s.stops++
	s.scanning = false
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

func (s *fakeScanner) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Decode delivers text the way the device goroutine would.
func (s *fakeScanner) Decode(text string) {
	s.mu.Lock()
	fn := s.onDecode
	s.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

func (s *fakeScanner) counts() (starts, stops int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts, s.stops
}

// ---- charts ----

type fakeChart struct {
	mu        sync.Mutex
	spec      ChartSpec
	destroyed bool
}

func (c *fakeChart) Lines() []string { return []string{"chart: " + c.spec.Title} }

func (c *fakeChart) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
}

func (c *fakeChart) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

type fakeCharts struct {
	mu   sync.Mutex
	made []*fakeChart
	err  error
}

func (f *fakeCharts) Render(spec ChartSpec) (Chart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c := &fakeChart{spec: spec}
	f.made = append(f.made, c)
	return c, nil
}

func (f *fakeCharts) Made() []*fakeChart {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeChart(nil), f.made...)
}

// ---- harness ----

type harness struct {
	t        *testing.T
	backend  *clienttest.Backend
	console  *Console
	out      *syncBuffer
	scanner  *fakeScanner
	charts   *fakeCharts
	mu       sync.Mutex
	answer   bool
	prompts  []string
	toastTTL time.Duration
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		t:        t,
		backend:  clienttest.NewBackend(t),
		out:      &syncBuffer{},
		scanner:  &fakeScanner{},
		charts:   &fakeCharts{},
		answer:   true,
		toastTTL: time.Minute,
	}

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	hc, err := client.NewHTTPClient(h.backend.URL, jar, logging.Nop())
	require.NoError(t, err)

	h.console = New(Deps{
		Auth:         services.NewAuthService(hc, nil),
		Certificates: services.NewCertificateService(hc),
		Renewals:     services.NewRenewalService(hc),
		Insights:     services.NewInsightsService(hc),
		Admin:        services.NewAdminService(hc),
		Links:        hc,
		Charts:       h.charts,
		Scanner:      h.scanner,
		Confirm:      h.confirm,
		Out:          h.out,
		Theme:        PlainTheme(),
		ToastTTL:     h.toastTTL,
		Log:          logging.Nop(),
	})
	t.Cleanup(func() { h.console.toasts.Clear() })
	return h
}

func (h *harness) confirm(prompt string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prompts = append(h.prompts, prompt)
	return h.answer
}

func (h *harness) answerWith(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.answer = v
}

func (h *harness) login(user, password string) {
	h.t.Helper()
	require.NoError(h.t, h.console.Login(context.Background(), user, []byte(password)))
}

func (h *harness) region(id Section) string {
	return joinLines(h.console.Region(id))
}

func (h *harness) toastMessages() []string {
	var out []string
	for _, t := range h.console.Toasts() {
		out = append(out, t.Message)
	}
	return out
}

func joinLines(lines []string) string {
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
