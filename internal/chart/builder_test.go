package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/srs"
)

func chartRecords() []srs.Record {
	return []srs.Record{
		{Team: "Georgia", Conference: "SEC", Season: 2022, Week: 1, Rating: 18.0},
		{Team: "Georgia", Conference: "SEC", Season: 2022, Week: 2, Rating: 19.5},
		{Team: "Georgia", Conference: "SEC", Season: 2023, Week: 1, Rating: 21.0},
		{Team: "Michigan", Conference: "Big Ten", Season: 2022, Week: 1, Rating: 15.0},
		{Team: "Michigan", Conference: "Big Ten", Season: 2023, Week: 1, Rating: 17.25},
	}
}

func chartMeta() srs.MetadataLookup {
	return srs.MetadataLookup{
		"Georgia": {School: "Georgia", Color: "#BA0C2F", Logo: "https://cdn.example.com/uga.png"},
	}
}

func TestBuildOneTraceCreatedPerTeam(t *testing.T) {
	spec := Build(chartRecords(), chartMeta(), false)

	require.Len(t, spec.Data, 2)
	assert.Equal(t, "🏈 Georgia", spec.Data[0].Name)
	assert.Equal(t, "🏈 Michigan", spec.Data[1].Name)
	assert.Equal(t, []string{"2022-01", "2022-02", "2023-01"}, spec.Data[0].X)
	assert.Equal(t, []float64{18.0, 19.5, 21.0}, spec.Data[0].Y)
}

func TestBuildCategoryOrderIsChronological(t *testing.T) {
	// Weeks above nine would sort before week 1 lexically without padding;
	// the category array must come from (season, week) order.
	records := []srs.Record{
		{Team: "Georgia", Season: 2022, Week: 10, Rating: 1},
		{Team: "Georgia", Season: 2022, Week: 2, Rating: 2},
		{Team: "Georgia", Season: 2023, Week: 1, Rating: 3},
	}
	spec := Build(records, nil, false)

	assert.Equal(t, []string{"2022-02", "2022-10", "2023-01"}, spec.Layout.XAxis.CategoryArray)
	assert.Equal(t, "category", spec.Layout.XAxis.Type)
	assert.Equal(t, "array", spec.Layout.XAxis.CategoryOrder)
}

func TestBuildColorsAndHover(t *testing.T) {
	spec := Build(chartRecords(), chartMeta(), false)

	georgia, michigan := spec.Data[0], spec.Data[1]
	assert.Equal(t, "#BA0C2F", georgia.Line.Color)
	assert.Contains(t, georgia.HoverTemplate, "<b>Georgia</b>")
	assert.Contains(t, georgia.HoverTemplate, "uga.png")
	assert.Contains(t, georgia.HoverTemplate, "SRS: %{y:.2f}")

	// Missing metadata degrades to default styling, no logo.
	assert.Empty(t, michigan.Line.Color)
	assert.NotContains(t, michigan.HoverTemplate, "img src")
	assert.Contains(t, michigan.HoverTemplate, "<b>Michigan</b>")
}

func TestBuildSeasonBoundaries(t *testing.T) {
	spec := Build(chartRecords(), chartMeta(), false)

	require.Len(t, spec.Layout.Shapes, 2)
	assert.Equal(t, "2022-01", spec.Layout.Shapes[0].X0)
	assert.Equal(t, "2023-01", spec.Layout.Shapes[1].X0)
	assert.Equal(t, "dash", spec.Layout.Shapes[0].Line.Dash)
	assert.Equal(t, "paper", spec.Layout.Shapes[0].YRef)

	// Year labels cover every boundary except the chronologically last one.
	require.Len(t, spec.Layout.Annotations, 1)
	assert.Equal(t, "2022", spec.Layout.Annotations[0].Text)
	assert.Equal(t, "2022-01", spec.Layout.Annotations[0].X)
}

func TestBuildSingleSeasonHasNoYearLabel(t *testing.T) {
	records := []srs.Record{
		{Team: "TeamA", Conference: "ConfX", Season: 2023, Week: 1, Rating: 10.0},
		{Team: "TeamA", Conference: "ConfX", Season: 2023, Week: 2, Rating: 12.0},
	}
	spec := Build(records, nil, false)

	require.Len(t, spec.Layout.Shapes, 1)
	assert.Equal(t, "2023-01", spec.Layout.Shapes[0].X0)
	assert.Empty(t, spec.Layout.Annotations)
}

func TestBuildBoundariesDeduplicatedAcrossTeams(t *testing.T) {
	// Two teams both have a week 1 in 2023; only one marker results.
	records := []srs.Record{
		{Team: "TeamA", Season: 2023, Week: 1, Rating: 10.0},
		{Team: "TeamB", Season: 2023, Week: 1, Rating: 8.0},
	}
	spec := Build(records, nil, false)
	assert.Len(t, spec.Layout.Shapes, 1)
}

func TestBuildAnimatedFrames(t *testing.T) {
	spec := Build(chartRecords(), chartMeta(), true)

	require.Len(t, spec.Frames, 3)
	assert.Equal(t, "2022-01", spec.Frames[0].Name)
	assert.Equal(t, "2022-02", spec.Frames[1].Name)
	assert.Equal(t, "2023-01", spec.Frames[2].Name)

	// First frame holds both teams' week-1 rows; second only Georgia's.
	assert.Len(t, spec.Frames[0].Data, 2)
	require.Len(t, spec.Frames[1].Data, 1)
	assert.Equal(t, "🏈 Georgia", spec.Frames[1].Data[0].Name)

	// Initial data mirrors the first frame.
	assert.Equal(t, spec.Frames[0].Data, spec.Data)
}

func TestBuildEmptySubset(t *testing.T) {
	spec := Build(nil, chartMeta(), false)

	assert.Empty(t, spec.Data)
	assert.Empty(t, spec.Frames)
	assert.Empty(t, spec.Layout.Shapes)

	// Still a serializable placeholder, not a nil figure.
	raw, err := json.Marshal(spec)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}
