package ui

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// Screen is the terminal stand-in for the page: one text region per
// section, at most one of them visible. Writing to the visible region
// prints it; writing to a hidden one only stores the lines.
type Screen struct {
	mu      sync.Mutex
	out     io.Writer
	theme   Theme
	regions map[Section][]string
	visible Section
}

func NewScreen(out io.Writer, theme Theme) *Screen {
	return &Screen{out: out, theme: theme, regions: map[Section][]string{}}
}

func (s *Screen) HideAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = ""
}

// Show makes id the visible region without printing it. Unknown ids leave
// every region hidden and report false.
func (s *Screen) Show(id Section) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !id.Valid() {
		s.visible = ""
		return false
	}
	s.visible = id
	return true
}

// Redraw prints the visible region, if any.
func (s *Screen) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible != "" {
		s.printRegion(s.visible)
	}
}

func (s *Screen) Visible() (Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible, s.visible != ""
}

// Replace sets the content of a region.
func (s *Screen) Replace(id Section, lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regions[id] = slices.Clone(lines)
	if s.visible == id {
		s.printRegion(id)
	}
}

func (s *Screen) Append(id Section, lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.regions[id] = append(s.regions[id], lines...)
	if s.visible == id {
		s.printLines(lines)
	}
}

func (s *Screen) Lines(id Section) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.regions[id])
}

// Reset wipes every region and hides them all.
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = map[Section][]string{}
	s.visible = ""
}

// Print writes lines outside of any region, e.g. toasts and prompts.
func (s *Screen) Print(lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.printLines(lines)
}

func (s *Screen) printRegion(id Section) {
	s.printLines([]string{"", s.theme.Title.Render(id.Title())})
	s.printLines(s.regions[id])
}

func (s *Screen) printLines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
}
