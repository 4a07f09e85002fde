package ui

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/certkeeper/internal/logging"
)

// PanelFunc fetches the data of a section and renders it through v.
type PanelFunc func(ctx context.Context, v View)

// View is the right to render one section for one navigation. Every
// navigation advances the router's generation; a View from an older
// generation can no longer write to the screen.
type View struct {
	router  *Router
	Section Section
	gen     uint64
}

// Current reports whether no navigation happened since v was issued.
func (v View) Current() bool {
	return v.router.current(v.gen)
}

// Commit replaces the section's content. It reports false, and writes
// nothing, when v is stale.
func (v View) Commit(lines []string) bool {
	return v.router.commit(v, lines)
}

// Router owns section visibility, panel dispatch and the scanner
// lifecycle. It never holds its lock while a panel runs or while the
// scanner starts.
type Router struct {
	mu      sync.Mutex
	screen  *Screen
	scanner BarcodeScanner
	panels  map[Section]PanelFunc
	active  Section
	gen     uint64
	log     logging.Logger
}

// NewRouter creates a router drawing on screen. scanner may be nil.
func NewRouter(screen *Screen, scanner BarcodeScanner, log logging.Logger) *Router {
	return &Router{
		screen:  screen,
		scanner: scanner,
		panels:  map[Section]PanelFunc{},
		log:     log,
	}
}

func (r *Router) Register(id Section, p PanelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panels[id] = p
}

// ShowSection navigates to id and runs its panel, if one is registered.
// Calling it again for the active section re-fetches.
func (r *Router) ShowSection(ctx context.Context, id Section) {
	v, panel := r.navigate(ctx, id)
	if panel != nil {
		panel(ctx, v)
	}
}

// Display navigates to id without running its panel; the caller renders
// through the returned View.
func (r *Router) Display(ctx context.Context, id Section) View {
	v, _ := r.navigate(ctx, id)
	return v
}

func (r *Router) navigate(ctx context.Context, id Section) (View, PanelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == SectionScan {
		r.stopScannerLocked(ctx)
	}

	r.gen++
	r.screen.HideAll()
	r.active = ""

	var panel PanelFunc
	if r.screen.Show(id) {
		r.active = id
		panel = r.panels[id]
		if panel == nil {
			r.screen.Redraw()
		}
	} else {
		r.log.Debug(ctx, "unknown section", "section", id)
	}

	r.log.Debug(ctx, "section shown", "section", id, "generation", r.gen)
	return View{router: r, Section: id, gen: r.gen}, panel
}

// Refresh re-runs the panel of id within the current generation, whether
// or not id is visible.
func (r *Router) Refresh(ctx context.Context, id Section) {
	r.mu.Lock()
	panel := r.panels[id]
	v := View{router: r, Section: id, gen: r.gen}
	r.mu.Unlock()

	if panel != nil {
		panel(ctx, v)
	}
}

// CurrentView returns a View of id in the current generation without
// navigating.
func (r *Router) CurrentView(id Section) View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return View{router: r, Section: id, gen: r.gen}
}

// Reset invalidates every outstanding View, stops the scanner and hides
// all regions.
func (r *Router) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopScannerLocked(ctx)
	r.gen++
	r.active = ""
	r.screen.HideAll()
}

func (r *Router) Active() Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

func (r *Router) current(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen == gen
}

func (r *Router) commit(v View, lines []string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gen != v.gen {
		r.log.Debug(context.Background(), "stale render discarded", "section", v.Section, "generation", v.gen, "current", r.gen)
		return false
	}
	r.screen.Replace(v.Section, lines)
	return true
}

// StartScanner begins a scan session. Only the first decode of the session
// reaches onDecode, and the device is stopped before it runs.
func (r *Router) StartScanner(ctx context.Context, onDecode func(text string)) error {
	r.mu.Lock()
	sc := r.scanner
	r.mu.Unlock()

	if sc == nil {
		return ErrNoScanner
	}
	if sc.Scanning() {
		return nil
	}

	var once sync.Once
	return sc.Start(ctx, func(text string) {
		once.Do(func() {
			if err := sc.Stop(); err != nil {
				r.log.Warn(ctx, "stop scanner after decode", "error", err)
			}
			onDecode(text)
		})
	})
}

func (r *Router) StopScanner(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scanner == nil || !r.scanner.Scanning() {
		return nil
	}
	return r.scanner.Stop()
}

func (r *Router) Scanning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scanner != nil && r.scanner.Scanning()
}

func (r *Router) stopScannerLocked(ctx context.Context) {
	if r.scanner == nil || !r.scanner.Scanning() {
		return
	}
	if err := r.scanner.Stop(); err != nil {
		r.log.Warn(ctx, "stop scanner", "error", err)
	}
}
