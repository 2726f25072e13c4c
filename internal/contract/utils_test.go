package contract

import (
	"os"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name       string
		attainment float64
		expected   string
	}{
		{name: "well above target", attainment: 150, expected: AheadValue},
		{name: "exactly on target", attainment: 100, expected: AheadValue},
		{name: "close to target", attainment: 70, expected: OnPaceValue},
		{name: "clearly under", attainment: 30, expected: BehindValue},
		{name: "barely moving", attainment: 29.9, expected: StalledValue},
		{name: "zero", attainment: 0, expected: StalledValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.attainment))
		})
	}
}

func TestGetColorLabelContainsPlainText(t *testing.T) {
	for _, attainment := range []float64{150, 80, 40, 5} {
		assert.Contains(t, GetColorLabel(attainment), GetPlainLabel(attainment))
	}
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", TruncateLabel("short", 20))
	assert.Equal(t, "exact", TruncateLabel("exact", 5))
	assert.Equal(t, "toolon...", TruncateLabel("toolongforthis", 9))

	// Below the minimum usable width the label passes through untouched
	assert.Equal(t, "anything", TruncateLabel("anything", 3))
}

func TestTruncateLabelMultibyte(t *testing.T) {
	truncated := TruncateLabel("Métricas de Produtividade", 10)
	assert.True(t, utf8.ValidString(truncated))
	assert.Equal(t, "Métrica...", truncated)

	// Width counts runes, not bytes
	assert.Equal(t, "日本語のラベル", TruncateLabel("日本語のラベル", 7))
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path means stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("path creates file", func(t *testing.T) {
		path := t.TempDir() + "/out.txt"
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.NotEqual(t, os.Stdout, f)

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestDBFilePaths(t *testing.T) {
	cache := GetCacheDBFilePath()
	snapshots := GetSnapshotDBFilePath()

	assert.Contains(t, cache, ".pulseboard_cache.db")
	assert.Contains(t, snapshots, ".pulseboard_snapshots.db")
	assert.NotEqual(t, cache, snapshots)
}
