package query

import "strings"

// SortField is a single ordering term.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression.
// A leading "-" marks a field as descending, e.g. "-CreatedAt,RouteName".
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		fields = append(fields, SortField{
			Field:      strings.TrimPrefix(part, "-"),
			Descending: desc,
		})
	}
	return fields
}
