// Package dataset loads the ratings and team metadata files once at startup
// and answers filter queries over the in-memory tables. Everything is
// read-only after Load, so the store is safe for concurrent requests
// without locking.
package dataset

import (
	"sort"

	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/srs"
)

// Store wraps the loaded tables behind query helpers.
type Store struct {
	records []srs.Record
	meta    srs.MetadataLookup
}

// Load reads both CSV files and returns a ready store. Either file failing
// to load fails the whole store; there is no partial-load fallback.
func Load(ratingsPath, metadataPath string) (*Store, error) {
	records, err := srs.LoadRatings(ratingsPath)
	if err != nil {
		return nil, err
	}
	meta, err := srs.LoadTeamMetadata(metadataPath)
	if err != nil {
		return nil, err
	}
	return &Store{records: records, meta: meta}, nil
}

// New builds a store from already-loaded tables (used by tests and the CLI).
func New(records []srs.Record, meta srs.MetadataLookup) *Store {
	return &Store{records: records, meta: meta}
}

// Len reports the number of loaded rating rows.
func (s *Store) Len() int {
	return len(s.records)
}

// Metadata returns the team metadata lookup.
func (s *Store) Metadata() srs.MetadataLookup {
	return s.meta
}

// Conferences returns the sorted distinct conference names, blanks dropped.
func (s *Store) Conferences() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range s.records {
		if r.Conference == "" || seen[r.Conference] {
			continue
		}
		seen[r.Conference] = true
		out = append(out, r.Conference)
	}
	sort.Strings(out)
	return out
}

// TeamsIn returns the sorted distinct teams within the given conferences.
// The team multiselect depends on the conference selection, so this is
// recomputed every time that selection changes.
func (s *Store) TeamsIn(conferences []string) []string {
	confs := make(map[string]bool, len(conferences))
	for _, c := range conferences {
		confs[c] = true
	}

	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range s.records {
		if !confs[r.Conference] || seen[r.Team] {
			continue
		}
		seen[r.Team] = true
		out = append(out, r.Team)
	}
	sort.Strings(out)
	return out
}

// Seasons returns the sorted distinct seasons.
func (s *Store) Seasons() []int {
	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, r := range s.records {
		if seen[r.Season] {
			continue
		}
		seen[r.Season] = true
		out = append(out, r.Season)
	}
	sort.Ints(out)
	return out
}

// Query holds the filters for retrieving ratings.
type Query struct {
	Conferences []string
	Teams       []string
	Seasons     []int
	Window      int
}

// Ratings runs the full pipeline for one interaction: filter, dedup, and
// optionally smooth. The result is a fresh slice ordered by
// (team, season, week); the loaded table is never mutated.
func (s *Store) Ratings(q Query) []srs.Record {
	sel := srs.Selection{
		Conferences: q.Conferences,
		Teams:       q.Teams,
		Seasons:     q.Seasons,
		Window:      q.Window,
	}
	subset := srs.Filter(s.records, sel)
	if len(subset) == 0 {
		return subset
	}
	return srs.Smooth(subset, q.Window)
}
