package server

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/chart"
	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/dataset"
	"github.com/dankyKang7/CollegeFootballSRSweeklyVisualized/internal/observability"
)

// noDataWarning is the user-visible message for the empty-selection path.
const noDataWarning = "⚠️ No data available for the selected filters. Please adjust your selections."

const (
	minWindow = 1
	maxWindow = 5
)

// parseSelection reads the shared filter parameters. An absent parameter
// means "all" (the dashboard's initial state); a present-but-empty one is a
// deliberately cleared multiselect and matches nothing.
func (s *Server) parseSelection(c *gin.Context) (dataset.Query, bool) {
	q := dataset.Query{Window: minWindow}

	if raw, ok := c.GetQuery("conferences"); ok {
		q.Conferences = splitList(raw)
	} else {
		q.Conferences = s.store.Conferences()
	}

	if raw, ok := c.GetQuery("teams"); ok {
		q.Teams = splitList(raw)
	} else {
		q.Teams = s.store.TeamsIn(q.Conferences)
	}

	if raw, ok := c.GetQuery("seasons"); ok {
		for _, item := range splitList(raw) {
			season, err := strconv.Atoi(item)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season: " + item})
				return q, false
			}
			q.Seasons = append(q.Seasons, season)
		}
	} else {
		q.Seasons = s.store.Seasons()
	}

	if raw := c.Query("window"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil || window < minWindow || window > maxWindow {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window must be an integer between 1 and 5"})
			return q, false
		}
		q.Window = window
	}

	return q, true
}

func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// handleOptions returns the filter control options. Team options depend on
// the conference selection and are recomputed on every call.
// GET /api/v1/options?conferences=SEC,Big+Ten
func (s *Server) handleOptions(c *gin.Context) {
	selected := s.store.Conferences()
	if raw, ok := c.GetQuery("conferences"); ok {
		selected = splitList(raw)
	}

	c.JSON(http.StatusOK, gin.H{
		"conferences": s.store.Conferences(),
		"teams":       s.store.TeamsIn(selected),
		"seasons":     s.store.Seasons(),
		"window": gin.H{
			"min": minWindow,
			"max": maxWindow,
		},
	})
}

// handleChart runs the pipeline and returns the figure spec.
// GET /api/v1/chart?conferences=&teams=&seasons=&window=1&animate=false
func (s *Server) handleChart(c *gin.Context) {
	q, ok := s.parseSelection(c)
	if !ok {
		return
	}

	animate := false
	if raw := c.Query("animate"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animate parameter"})
			return
		}
		animate = val
	}

	records := s.store.Ratings(q)
	if len(records) == 0 {
		observability.PipelineRuns.WithLabelValues("empty").Inc()
		c.JSON(http.StatusOK, gin.H{
			"empty":   true,
			"warning": noDataWarning,
		})
		return
	}

	start := time.Now()
	spec := chart.Build(records, s.store.Metadata(), animate)
	observability.ChartBuildDuration.Observe(time.Since(start).Seconds())
	observability.PipelineRuns.WithLabelValues("ok").Inc()

	c.JSON(http.StatusOK, gin.H{
		"empty": false,
		"chart": spec,
		"meta": gin.H{
			"rows": len(records),
		},
	})
}

type tableRow struct {
	Team       string  `json:"team"`
	Conference string  `json:"team_conference"`
	Season     int     `json:"season"`
	Week       int     `json:"week"`
	Rating     float64 `json:"ratings"`
	PeriodKey  string  `json:"period_key"`
}

// handleTable returns the filtered (and smoothed) rows for the raw-data
// table, ordered by (team, period key).
// GET /api/v1/table?conferences=&teams=&seasons=&window=1
func (s *Server) handleTable(c *gin.Context) {
	q, ok := s.parseSelection(c)
	if !ok {
		return
	}

	records := s.store.Ratings(q)
	rows := make([]tableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, tableRow{
			Team:       r.Team,
			Conference: r.Conference,
			Season:     r.Season,
			Week:       r.Week,
			Rating:     r.Rating,
			PeriodKey:  r.PeriodKey(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": rows,
		"meta": gin.H{
			"count": len(rows),
		},
	})
}

// handleExportCSV streams the filtered subset as a UTF-8 CSV download with
// the derived period_key appended. An empty subset yields a header-only file.
// GET /api/v1/export.csv?conferences=&teams=&seasons=&window=1
func (s *Server) handleExportCSV(c *gin.Context) {
	q, ok := s.parseSelection(c)
	if !ok {
		return
	}

	records := s.store.Ratings(q)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"team", "team_conference", "season", "week", "ratings", "period_key"})
	for _, r := range records {
		_ = w.Write([]string{
			r.Team,
			r.Conference,
			strconv.Itoa(r.Season),
			strconv.Itoa(r.Week),
			strconv.FormatFloat(r.Rating, 'f', -1, 64),
			r.PeriodKey(),
		})
	}
	w.Flush()

	observability.CSVExports.Inc()
	c.Header("Content-Disposition", `attachment; filename="filtered_srs_data.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
