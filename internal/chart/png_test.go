package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNGWritesImage(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(chartRecords(), chartMeta(), &buf, PNGOptions{Width: 800, Height: 400})
	require.NoError(t, err)

	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), buf.Bytes()[:8])
}

func TestRenderPNGEmptySubsetErrors(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(nil, nil, &buf, PNGOptions{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestPeriodTicksSubsampleLongRuns(t *testing.T) {
	periods := make([]string, 100)
	for i := range periods {
		periods[i] = "x"
	}
	ticks := periodTicks(periods)

	require.Len(t, ticks, 100)
	labeled := 0
	for _, tick := range ticks {
		if tick.Label != "" {
			labeled++
		}
	}
	assert.LessOrEqual(t, labeled, maxAxisLabels)
	assert.NotEmpty(t, ticks[0].Label)
}
