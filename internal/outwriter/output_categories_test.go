package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVResultsForPoints(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(1)

	points := schema.PointsSummary{Total: 30, Locked: 10, Unlocked: 20}
	require.NoError(t, writeCSVResultsForPoints(w, points, fmtFloat))
	w.Flush()

	out := buf.String()
	assert.Contains(t, out, "metric,value")
	assert.Contains(t, out, "total,30.0")
	assert.Contains(t, out, "locked,10.0")
	assert.Contains(t, out, "unlocked,20.0")
}

func TestWriteCSVResultsForProgress(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	progress := schema.ProgressCounters{Completed: 3, Incomplete: 2}
	require.NoError(t, writeCSVResultsForProgress(w, progress))
	w.Flush()

	out := buf.String()
	assert.Contains(t, out, "completed,3")
	assert.Contains(t, out, "incomplete,2")
}

func TestWriteCSVResultsForPortfolio(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	portfolio := schema.PortfolioSummary{
		Total:    3,
		ByStatus: map[string]int{"submitted": 2, "approved": 1},
	}
	require.NoError(t, writeCSVResultsForPortfolio(w, portfolio))
	w.Flush()

	out := buf.String()
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 4, lines)
	assert.Contains(t, out, "status,count")
	assert.Contains(t, out, "approved,1")
	assert.Contains(t, out, "submitted,2")
	assert.Contains(t, out, "total,3")
}

func TestWritePortfolioTable(t *testing.T) {
	var buf bytes.Buffer
	portfolio := schema.PortfolioSummary{
		Total:    2,
		ByStatus: map[string]int{"draft": 1, "approved": 1},
	}

	require.NoError(t, writePortfolioTable(&buf, portfolio))
	out := buf.String()
	assert.Contains(t, out, "approved")
	assert.Contains(t, out, "Total items: 2")
}
