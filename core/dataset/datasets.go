package dataset

import (
	"strings"
	"unicode"

	"github.com/pulseboard/pulseboard/core/timeline"
	"github.com/pulseboard/pulseboard/schema"
)

// BuildLabeledDatasets produces one dataset per label, all sharing the same
// completed points (legacy single-series-many-labels mode). Colors are
// assigned by label index. No labels yields no datasets.
func BuildLabeledDatasets(points []schema.TimePoint, labels []string) []schema.NamedSeries {
	series := make([]schema.NamedSeries, 0, len(labels))
	for i, label := range labels {
		series = append(series, schema.NamedSeries{
			Label:      label,
			Points:     points,
			ColorIndex: i,
		})
	}
	return series
}

// BuildPerKeyDatasets partitions raw records by their Key field and builds
// one independently completed series per key. Colors follow first-seen key
// order, so a key keeps its color across reloads of the same record stream.
// Zero input records yields zero datasets.
func BuildPerKeyDatasets(records []schema.RawDatedRecord, r schema.DateRange) []schema.NamedSeries {
	byKey := make(map[string][]schema.RawDatedRecord)
	var keyOrder []string

	for _, rec := range records {
		key := rec.Key
		if key == "" {
			key = schema.DefaultRecordKey
		}
		if _, seen := byKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = append(byKey[key], rec)
	}

	series := make([]schema.NamedSeries, 0, len(keyOrder))
	for i, key := range keyOrder {
		series = append(series, schema.NamedSeries{
			Label:      LabelForKey(key),
			Points:     timeline.BuildSeries(byKey[key], r),
			ColorIndex: i,
		})
	}
	return series
}

// LabelForKey converts a snake_case or camelCase record key into a Title
// Case display label. The default key maps to "Total".
func LabelForKey(key string) string {
	if key == "" || key == schema.DefaultRecordKey {
		return schema.TotalSeriesLabel
	}

	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for _, r := range key {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			current.WriteRune(unicode.ToLower(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	for i, w := range words {
		rr := []rune(w)
		rr[0] = unicode.ToUpper(rr[0])
		words[i] = string(rr)
	}
	return strings.Join(words, " ")
}
