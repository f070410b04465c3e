package srs

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadError reports a missing, malformed, or incomplete input file.
// Loading is all-or-nothing: there is no partial-load fallback.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

var ratingColumns = []string{"team", "team_conference", "season", "week", "ratings"}

var metadataColumns = []string{"school", "color", "logo"}

// LoadRatings reads the weekly ratings CSV. Season and week must coerce to
// integers and ratings to a float; anything else fails the whole load.
func LoadRatings(path string) ([]Record, error) {
	header, rows, err := readCSV(path, ratingColumns)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		season, err := strconv.Atoi(strings.TrimSpace(row[header["season"]]))
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("row %d: invalid season %q", i+2, row[header["season"]])}
		}
		week, err := strconv.Atoi(strings.TrimSpace(row[header["week"]]))
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("row %d: invalid week %q", i+2, row[header["week"]])}
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(row[header["ratings"]]), 64)
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("row %d: invalid rating %q", i+2, row[header["ratings"]])}
		}
		records = append(records, Record{
			Team:       row[header["team"]],
			Conference: row[header["team_conference"]],
			Season:     season,
			Week:       week,
			Rating:     rating,
		})
	}
	return records, nil
}

// LoadTeamMetadata reads the team metadata CSV into a lookup keyed by school
// name. On duplicate schools the first row wins.
func LoadTeamMetadata(path string) (MetadataLookup, error) {
	header, rows, err := readCSV(path, metadataColumns)
	if err != nil {
		return nil, err
	}

	lookup := make(MetadataLookup, len(rows))
	for _, row := range rows {
		school := row[header["school"]]
		if _, ok := lookup[school]; ok {
			continue
		}
		lookup[school] = TeamMetadata{
			School: school,
			Color:  row[header["color"]],
			Logo:   row[header["logo"]],
		}
	}
	return lookup, nil
}

// readCSV parses a CSV file and verifies the required columns are present.
// It returns a name-to-index map for the header plus the data rows.
func readCSV(path string, required []string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("empty file")}
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("missing required column %q", col)}
		}
	}
	return header, rows[1:], nil
}
