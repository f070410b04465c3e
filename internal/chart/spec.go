// Package chart builds the figure shown by the dashboard: one line per
// team over a categorical season-week axis, decorated with team colors,
// hover text, and season-boundary markers. The Spec serializes into the
// JSON shape the Plotly frontend consumes directly.
package chart

// Spec is a renderable figure: traces, layout, and optional animation frames.
type Spec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames,omitempty"`
}

// Trace is one team's line series.
type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode"`
	Name          string    `json:"name"`
	X             []string  `json:"x"`
	Y             []float64 `json:"y"`
	Line          Line      `json:"line"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

// Line holds per-trace line styling.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width"`
}

// Layout mirrors the subset of Plotly layout the dashboard uses.
type Layout struct {
	XAxis       Axis         `json:"xaxis"`
	YAxis       Axis         `json:"yaxis"`
	Legend      Legend       `json:"legend"`
	HoverMode   string       `json:"hovermode"`
	Shapes      []Shape      `json:"shapes,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Axis configures one chart axis.
type Axis struct {
	Title         Title    `json:"title"`
	Type          string   `json:"type,omitempty"`
	CategoryOrder string   `json:"categoryorder,omitempty"`
	CategoryArray []string `json:"categoryarray,omitempty"`
	TickAngle     float64  `json:"tickangle,omitempty"`
}

// Title wraps an axis or legend title.
type Title struct {
	Text string `json:"text"`
}

// Legend configures the chart legend.
type Legend struct {
	Title Title `json:"title"`
}

// Shape is a layout shape; here always a vertical season-boundary line.
type Shape struct {
	Type    string    `json:"type"`
	X0      string    `json:"x0"`
	X1      string    `json:"x1"`
	Y0      float64   `json:"y0"`
	Y1      float64   `json:"y1"`
	YRef    string    `json:"yref"`
	Line    ShapeLine `json:"line"`
	Opacity float64   `json:"opacity"`
}

// ShapeLine styles a boundary line.
type ShapeLine struct {
	Color string  `json:"color"`
	Dash  string  `json:"dash"`
	Width float64 `json:"width"`
}

// Annotation is a non-interactive label; here the season year above each
// season-start boundary.
type Annotation struct {
	X         string  `json:"x"`
	Y         float64 `json:"y"`
	YRef      string  `json:"yref"`
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XAnchor   string  `json:"xanchor"`
	Font      Font    `json:"font"`
}

// Font styles annotation text.
type Font struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
}

// Frame is one animation step, keyed by period.
type Frame struct {
	Name string  `json:"name"`
	Data []Trace `json:"data"`
}
