package srs

// Smooth replaces each team's rating sequence with its trailing arithmetic
// mean over up to window samples. Partitions never mix: each team is
// averaged over its own (season, week)-ordered sequence only, and the first
// window-1 periods average over however many samples exist so far. A window
// of one or less returns the input untouched.
func Smooth(records []Record, window int) []Record {
	if window <= 1 || len(records) == 0 {
		return records
	}

	out := make([]Record, len(records))
	copy(out, records)
	sortRecords(out)

	start := 0
	for i := 1; i <= len(out); i++ {
		if i == len(out) || out[i].Team != out[start].Team {
			smoothRun(out[start:i], window)
			start = i
		}
	}
	return out
}

// smoothRun applies the trailing mean in place over a single team's ordered run.
func smoothRun(run []Record, window int) {
	raw := make([]float64, len(run))
	for i, r := range run {
		raw[i] = r.Rating
	}

	sum := 0.0
	for i := range run {
		sum += raw[i]
		if i >= window {
			sum -= raw[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		run[i].Rating = sum / float64(n)
	}
}
