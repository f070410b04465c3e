package srs

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one weekly SRS rating for a team.
type Record struct {
	Team       string  `json:"team"`
	Conference string  `json:"team_conference"`
	Season     int     `json:"season"`
	Week       int     `json:"week"`
	Rating     float64 `json:"ratings"`
}

// PeriodKey returns the sortable season-week key for this record, e.g. "2023-01".
func (r Record) PeriodKey() string {
	return FormatPeriodKey(r.Season, r.Week)
}

// FormatPeriodKey combines season and week into a key whose lexical order
// matches chronological order. The two-digit week padding is what makes
// that hold, so it must never be dropped.
func FormatPeriodKey(season, week int) string {
	return fmt.Sprintf("%d-%02d", season, week)
}

// ParsePeriodKey splits a period key back into season and week.
func ParsePeriodKey(key string) (season, week int, err error) {
	idx := strings.LastIndex(key, "-")
	if idx <= 0 || idx == len(key)-1 {
		return 0, 0, fmt.Errorf("invalid period key %q", key)
	}
	season, err = strconv.Atoi(key[:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid season in period key %q", key)
	}
	week, err = strconv.Atoi(key[idx+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week in period key %q", key)
	}
	return season, week, nil
}

// TeamMetadata holds display attributes for one school.
type TeamMetadata struct {
	School string `json:"school"`
	Color  string `json:"color"`
	Logo   string `json:"logo"`
}

// MetadataLookup maps a team name to its display metadata. Teams absent
// from the lookup still render, with default styling and no logo.
type MetadataLookup map[string]TeamMetadata

// Selection is the ephemeral set of filters for one interaction cycle.
type Selection struct {
	Conferences []string
	Teams       []string
	Seasons     []int
	Window      int
	Animate     bool
}
