package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{Team: "TeamA", Conference: "ConfX", Season: 2023, Week: 1, Rating: 10.0},
		{Team: "TeamA", Conference: "ConfX", Season: 2023, Week: 2, Rating: 12.0},
		{Team: "TeamB", Conference: "ConfY", Season: 2023, Week: 1, Rating: 8.0},
	}
}

func TestFilterEndToEndScenario(t *testing.T) {
	sel := Selection{
		Conferences: []string{"ConfX"},
		Teams:       []string{"TeamA"},
		Seasons:     []int{2023},
	}

	got := Filter(testRecords(), sel)
	require.Len(t, got, 2)
	assert.Equal(t, "2023-01", got[0].PeriodKey())
	assert.Equal(t, "2023-02", got[1].PeriodKey())
	assert.Equal(t, 10.0, got[0].Rating)
	assert.Equal(t, 12.0, got[1].Rating)
}

func TestFilterEmptySelectionYieldsEmptySubset(t *testing.T) {
	got := Filter(testRecords(), Selection{
		Conferences: nil,
		Teams:       []string{"TeamA"},
		Seasons:     []int{2023},
	})
	assert.Empty(t, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	sel := Selection{
		Conferences: []string{"ConfX", "ConfY"},
		Teams:       []string{"TeamA", "TeamB"},
		Seasons:     []int{2023},
	}

	once := Filter(testRecords(), sel)
	twice := Filter(once, sel)
	assert.Equal(t, once, twice)
}

func TestFilterDedupKeepsFirstInSourceOrder(t *testing.T) {
	records := []Record{
		{Team: "TeamA", Conference: "ConfX", Season: 2023, Week: 1, Rating: 10.0},
		{Team: "TeamA", Conference: "ConfX", Season: 2023, Week: 1, Rating: 99.0},
	}
	sel := Selection{Conferences: []string{"ConfX"}, Teams: []string{"TeamA"}, Seasons: []int{2023}}

	got := Filter(records, sel)
	require.Len(t, got, 1)
	assert.Equal(t, 10.0, got[0].Rating)
}

func TestFilterOrdersByTeamSeasonWeek(t *testing.T) {
	records := []Record{
		{Team: "TeamB", Conference: "ConfY", Season: 2023, Week: 2, Rating: 1},
		{Team: "TeamA", Conference: "ConfX", Season: 2024, Week: 1, Rating: 2},
		{Team: "TeamA", Conference: "ConfX", Season: 2023, Week: 5, Rating: 3},
		{Team: "TeamB", Conference: "ConfY", Season: 2023, Week: 1, Rating: 4},
	}
	sel := Selection{
		Conferences: []string{"ConfX", "ConfY"},
		Teams:       []string{"TeamA", "TeamB"},
		Seasons:     []int{2023, 2024},
	}

	got := Filter(records, sel)
	require.Len(t, got, 4)
	assert.Equal(t, []float64{3, 2, 4, 1}, []float64{got[0].Rating, got[1].Rating, got[2].Rating, got[3].Rating})
}
