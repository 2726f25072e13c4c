// Package dataset turns completed series into named, colored chart datasets.
package dataset

// Color is one palette entry: a line/border color and its translucent fill.
type Color struct {
	Stroke string `json:"stroke"`
	Fill   string `json:"fill"`
}

// palette is the fixed chart palette. Colors are assigned by dataset index
// and cycle when more series than palette entries exist.
var palette = []Color{
	{Stroke: "#3e95cd", Fill: "rgba(62,149,205,0.35)"},
	{Stroke: "#8e5ea2", Fill: "rgba(142,94,162,0.35)"},
	{Stroke: "#3cba9f", Fill: "rgba(60,186,159,0.35)"},
	{Stroke: "#e8c3b9", Fill: "rgba(232,195,185,0.35)"},
	{Stroke: "#c45850", Fill: "rgba(196,88,80,0.35)"},
	{Stroke: "#ffa600", Fill: "rgba(255,166,0,0.35)"},
}

// PaletteSize is the number of distinct palette entries.
const PaletteSize = 6

// PaletteColor returns the palette entry for a dataset index. The lookup is
// deterministic and cyclic: PaletteColor(i) == PaletteColor(i + PaletteSize).
func PaletteColor(index int) Color {
	if index < 0 {
		index = -index
	}
	return palette[index%PaletteSize]
}
