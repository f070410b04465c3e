package chart

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/srs"
)

// PNGOptions sizes the static render.
type PNGOptions struct {
	Width  int
	Height int
	Title  string
}

// maxAxisLabels caps how many period labels the static x-axis carries
// before subsampling; a full multi-season run does not fit otherwise.
const maxAxisLabels = 24

// RenderPNG writes a static render of the same filtered+smoothed subset the
// dashboard plots. Period keys map onto numeric x positions in category
// order; team colors come from metadata with the library palette as
// fallback. An empty subset is an error here since a blank file helps no
// one at the command line.
func RenderPNG(records []srs.Record, meta srs.MetadataLookup, w io.Writer, opts PNGOptions) error {
	if len(records) == 0 {
		return fmt.Errorf("no rows to render")
	}
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.Title == "" {
		opts.Title = "College Football SRS"
	}

	periods := periodOrder(records)
	index := make(map[string]int, len(periods))
	for i, key := range periods {
		index[key] = i
	}

	byTeam := groupByTeam(records)
	teams := make([]string, 0, len(byTeam))
	for team := range byTeam {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	series := make([]chart.Series, 0, len(teams))
	for i, team := range teams {
		rows := byTeam[team]
		sort.Slice(rows, func(a, b int) bool {
			if rows[a].Season != rows[b].Season {
				return rows[a].Season < rows[b].Season
			}
			return rows[a].Week < rows[b].Week
		})

		xs := make([]float64, len(rows))
		ys := make([]float64, len(rows))
		for j, r := range rows {
			xs[j] = float64(index[r.PeriodKey()])
			ys[j] = r.Rating
		}
		series = append(series, chart.ContinuousSeries{
			Name:    team,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: teamColor(team, meta, i),
				StrokeWidth: lineWidth,
			},
		})
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 32, Left: 16, Right: 16, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:      "Season + Week",
			Ticks:     periodTicks(periods),
			GridLines: boundaryGridLines(records, index),
			GridMajorStyle: chart.Style{
				StrokeColor:     drawing.Color{R: 128, G: 128, B: 128, A: 102},
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 4},
			},
		},
		YAxis:  chart.YAxis{Name: "SRS Rating"},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

func teamColor(team string, meta srs.MetadataLookup, index int) drawing.Color {
	if md, ok := meta[team]; ok && md.Color != "" {
		return drawing.ColorFromHex(strings.TrimPrefix(md.Color, "#"))
	}
	return chart.GetDefaultColor(index)
}

func periodTicks(periods []string) []chart.Tick {
	step := 1
	if len(periods) > maxAxisLabels {
		step = (len(periods) + maxAxisLabels - 1) / maxAxisLabels
	}

	ticks := make([]chart.Tick, 0, len(periods)/step+1)
	for i, key := range periods {
		label := key
		if i%step != 0 {
			label = ""
		}
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}
	return ticks
}

// boundaryGridLines marks every season-start period present in the subset.
func boundaryGridLines(records []srs.Record, index map[string]int) []chart.GridLine {
	lines := make([]chart.GridLine, 0)
	for _, key := range seasonBoundaries(records) {
		if pos, ok := index[key]; ok {
			lines = append(lines, chart.GridLine{Value: float64(pos)})
		}
	}
	return lines
}
