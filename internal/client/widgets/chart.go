// Package widgets draws the profile charts as terminal text.
package widgets

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/dmitrijs2005/certkeeper/internal/client/ui"
)

var (
	ErrSeriesMismatch = errors.New("labels and values differ in length")
	ErrNegativeValue  = errors.New("chart values must not be negative")
	ErrUnknownKind    = errors.New("unknown chart kind")
)

const (
	DefaultWidth = 30

	fullCell  = "█"
	emptyCell = "░"
)

var palette = []string{"#28a745", "#ffc107", "#dc3545", "#17a2b8", "#7c3aed", "#fd7e14"}

// Renderer implements ui.ChartRenderer with block characters.
type Renderer struct {
	width  int
	styles []lipgloss.Style
	title  lipgloss.Style
}

// NewRenderer returns a Renderer drawing bars up to width cells. With plain
// set no colour is emitted.
func NewRenderer(width int, plain bool) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	r := &Renderer{width: width, title: lipgloss.NewStyle()}
	for _, c := range palette {
		s := lipgloss.NewStyle()
		if !plain {
			s = s.Foreground(lipgloss.Color(c))
		}
		r.styles = append(r.styles, s)
	}
	if !plain {
		r.title = r.title.Bold(true).Underline(true)
	}
	return r
}

func (r *Renderer) Render(spec ui.ChartSpec) (ui.Chart, error) {
	if len(spec.Labels) != len(spec.Values) {
		return nil, fmt.Errorf("%s: %w", spec.Title, ErrSeriesMismatch)
	}
	for _, v := range spec.Values {
		if v < 0 {
			return nil, fmt.Errorf("%s: %w", spec.Title, ErrNegativeValue)
		}
	}

	var body []string
	switch spec.Kind {
	case ui.ChartDoughnut:
		body = r.shares(spec)
	case ui.ChartBar:
		body = r.bars(spec)
	default:
		return nil, fmt.Errorf("%q: %w", spec.Kind, ErrUnknownKind)
	}

	lines := make([]string, 0, len(body)+1)
	if spec.Title != "" {
		lines = append(lines, r.title.Render(spec.Title))
	}
	lines = append(lines, body...)
	return &chart{lines: lines}, nil
}

// shares draws every slice as its percentage of the total.
func (r *Renderer) shares(spec ui.ChartSpec) []string {
	var total float64
	for _, v := range spec.Values {
		total += v
	}
	if total == 0 {
		return []string{"No data."}
	}

	width := labelWidth(spec.Labels)
	out := make([]string, 0, len(spec.Labels))
	for i, label := range spec.Labels {
		share := spec.Values[i] / total
		out = append(out, fmt.Sprintf("%-*s %s %5.1f%%",
			width, label, r.bar(i, share), share*100))
	}
	return out
}

// bars scales every value against the largest one.
func (r *Renderer) bars(spec ui.ChartSpec) []string {
	var top float64
	for _, v := range spec.Values {
		top = max(top, v)
	}
	if top == 0 {
		return []string{"No data."}
	}

	width := labelWidth(spec.Labels)
	out := make([]string, 0, len(spec.Labels))
	for i, label := range spec.Labels {
		out = append(out, fmt.Sprintf("%-*s %s %g",
			width, label, r.bar(i, spec.Values[i]/top), spec.Values[i]))
	}
	return out
}

func (r *Renderer) bar(i int, fraction float64) string {
	filled := int(fraction*float64(r.width) + 0.5)
	filled = min(max(filled, 0), r.width)
	style := r.styles[i%len(r.styles)]
	return style.Render(strings.Repeat(fullCell, filled)) + strings.Repeat(emptyCell, r.width-filled)
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

type chart struct {
	mu        sync.Mutex
	lines     []string
	destroyed bool
}

// Lines returns nothing once the chart is destroyed.
func (c *chart) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return nil
	}
	return append([]string(nil), c.lines...)
}

func (c *chart) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
	c.lines = nil
}

// Destroyed reports whether Destroy was called.
func (c *chart) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

var _ ui.ChartRenderer = (*Renderer)(nil)
