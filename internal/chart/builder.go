package chart

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/srs"
)

// legendPrefix decorates every legend entry, whether or not the team has a
// color override.
const legendPrefix = "🏈 "

const lineWidth = 3

// Build constructs the figure for a filtered (and optionally smoothed)
// subset. An empty subset yields an empty placeholder spec rather than an
// error. With animate set, the figure carries one frame per distinct period
// in chronological order instead of static full-series traces.
func Build(records []srs.Record, meta srs.MetadataLookup, animate bool) Spec {
	periods := periodOrder(records)
	spec := Spec{
		Data:   []Trace{},
		Layout: buildLayout(records, periods),
	}
	if len(records) == 0 {
		return spec
	}

	if animate {
		spec.Frames = buildFrames(records, meta, periods)
		if len(spec.Frames) > 0 {
			spec.Data = spec.Frames[0].Data
		}
		return spec
	}

	spec.Data = buildTraces(records, meta)
	return spec
}

// periodOrder returns the distinct period keys present, sorted by the
// underlying (season, week) rather than trusting lexical order.
func periodOrder(records []srs.Record) []string {
	type period struct {
		season int
		week   int
	}
	seen := make(map[period]bool)
	periods := make([]period, 0)
	for _, r := range records {
		p := period{season: r.Season, week: r.Week}
		if seen[p] {
			continue
		}
		seen[p] = true
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].season != periods[j].season {
			return periods[i].season < periods[j].season
		}
		return periods[i].week < periods[j].week
	})

	keys := make([]string, len(periods))
	for i, p := range periods {
		keys[i] = srs.FormatPeriodKey(p.season, p.week)
	}
	return keys
}

func buildTraces(records []srs.Record, meta srs.MetadataLookup) []Trace {
	byTeam := groupByTeam(records)
	teams := make([]string, 0, len(byTeam))
	for team := range byTeam {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	traces := make([]Trace, 0, len(teams))
	for _, team := range teams {
		traces = append(traces, teamTrace(team, byTeam[team], meta))
	}
	return traces
}

func teamTrace(team string, rows []srs.Record, meta srs.MetadataLookup) Trace {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Season != rows[j].Season {
			return rows[i].Season < rows[j].Season
		}
		return rows[i].Week < rows[j].Week
	})

	x := make([]string, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		x[i] = r.PeriodKey()
		y[i] = r.Rating
	}

	trace := Trace{
		Type:          "scatter",
		Mode:          "lines+markers",
		Name:          legendPrefix + team,
		X:             x,
		Y:             y,
		Line:          Line{Width: lineWidth},
		HoverTemplate: hoverTemplate(team, meta),
	}
	if md, ok := meta[team]; ok && md.Color != "" {
		trace.Line.Color = md.Color
	}
	return trace
}

// hoverTemplate embeds the team logo when metadata has one; teams without
// metadata fall back to the plain template.
func hoverTemplate(team string, meta srs.MetadataLookup) string {
	if md, ok := meta[team]; ok && md.Logo != "" {
		return fmt.Sprintf("<b>%s</b><br><img src='%s' style='width:30px;height:30px;'><br>Week: %%{x}<br>SRS: %%{y:.2f}<extra></extra>", team, md.Logo)
	}
	return fmt.Sprintf("<b>%s</b><br>Week: %%{x}<br>SRS: %%{y:.2f}<extra></extra>", team)
}

func buildFrames(records []srs.Record, meta srs.MetadataLookup, periods []string) []Frame {
	rowsByPeriod := make(map[string][]srs.Record, len(periods))
	for _, r := range records {
		key := r.PeriodKey()
		rowsByPeriod[key] = append(rowsByPeriod[key], r)
	}

	frames := make([]Frame, 0, len(periods))
	for _, key := range periods {
		frames = append(frames, Frame{
			Name: key,
			Data: buildTraces(rowsByPeriod[key], meta),
		})
	}
	return frames
}

func buildLayout(records []srs.Record, periods []string) Layout {
	layout := Layout{
		XAxis: Axis{
			Title:         Title{Text: "Season + Week"},
			Type:          "category",
			CategoryOrder: "array",
			CategoryArray: periods,
			TickAngle:     -45,
		},
		YAxis:     Axis{Title: Title{Text: "SRS Rating"}},
		Legend:    Legend{Title: Title{Text: "Team"}},
		HoverMode: "closest",
	}

	boundaries := seasonBoundaries(records)
	for _, key := range boundaries {
		layout.Shapes = append(layout.Shapes, Shape{
			Type:    "line",
			X0:      key,
			X1:      key,
			Y0:      0,
			Y1:      1,
			YRef:    "paper",
			Line:    ShapeLine{Color: "gray", Dash: "dash", Width: 1},
			Opacity: 0.4,
		})
	}

	// The last boundary has no following period to compare against, so it
	// gets no year label.
	for i, key := range boundaries {
		if i+1 >= len(boundaries) {
			break
		}
		season, _, err := srs.ParsePeriodKey(key)
		if err != nil {
			continue
		}
		layout.Annotations = append(layout.Annotations, Annotation{
			X:         key,
			Y:         1.05,
			YRef:      "paper",
			Text:      strconv.Itoa(season),
			ShowArrow: false,
			XAnchor:   "left",
			Font:      Font{Size: 12, Color: "gray"},
		})
	}

	return layout
}

// seasonBoundaries returns the distinct week-1 period keys in
// chronological order, one marker per season start present in the subset.
func seasonBoundaries(records []srs.Record) []string {
	seen := make(map[int]bool)
	seasons := make([]int, 0)
	for _, r := range records {
		if r.Week != 1 || seen[r.Season] {
			continue
		}
		seen[r.Season] = true
		seasons = append(seasons, r.Season)
	}
	sort.Ints(seasons)

	keys := make([]string, len(seasons))
	for i, season := range seasons {
		keys[i] = srs.FormatPeriodKey(season, 1)
	}
	return keys
}

func groupByTeam(records []srs.Record) map[string][]srs.Record {
	byTeam := make(map[string][]srs.Record)
	for _, r := range records {
		byTeam[r.Team] = append(byTeam[r.Team], r)
	}
	return byTeam
}
