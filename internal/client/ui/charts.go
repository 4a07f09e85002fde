package ui

// ChartKind selects how a series is drawn.
type ChartKind string

const (
	ChartDoughnut ChartKind = "doughnut"
	ChartBar      ChartKind = "bar"
)

// ChartSpec describes one chart: labels and values are parallel slices.
type ChartSpec struct {
	Kind   ChartKind
	Title  string
	Labels []string
	Values []float64
}

// Chart is a rendered chart handle. Destroy releases it; a destroyed chart
// must not be drawn again.
type Chart interface {
	Lines() []string
	Destroy()
}

// ChartRenderer turns a ChartSpec into a Chart.
type ChartRenderer interface {
	Render(spec ChartSpec) (Chart, error)
}
