package schema

import "strings"

// AbbreviateName formats "Ana Clara Souza" to "Ana S" for compact roster
// display. Single-word names are returned unchanged.
func AbbreviateName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) >= 2 {
		last := []rune(parts[len(parts)-1])
		if len(last) > 0 {
			return parts[0] + " " + string(last[0])
		}
		return parts[0]
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return name
}

// FormatMembers renders a roster as "Ana S, Bruno M" for table cells.
func FormatMembers(members []Member) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, AbbreviateName(m.DisplayName))
	}
	return strings.Join(names, ", ")
}
