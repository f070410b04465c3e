package srs

import "sort"

type recordKey struct {
	team   string
	season int
	week   int
}

// Filter returns the records matching the selection, deduplicated on
// (team, season, week) with the first occurrence in source order winning,
// ordered by (team, season, week). Empty selection sets match nothing;
// that is the "no data" path, not an error.
func Filter(records []Record, sel Selection) []Record {
	confs := make(map[string]bool, len(sel.Conferences))
	for _, c := range sel.Conferences {
		confs[c] = true
	}
	teams := make(map[string]bool, len(sel.Teams))
	for _, t := range sel.Teams {
		teams[t] = true
	}
	seasons := make(map[int]bool, len(sel.Seasons))
	for _, s := range sel.Seasons {
		seasons[s] = true
	}

	seen := make(map[recordKey]bool)
	out := make([]Record, 0)
	for _, r := range records {
		if !confs[r.Conference] || !teams[r.Team] || !seasons[r.Season] {
			continue
		}
		key := recordKey{team: r.Team, season: r.Season, week: r.Week}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}

	sortRecords(out)
	return out
}

func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		return a.Week < b.Week
	})
}
