package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

// Placeholder fills a dashboard slot the backend left out.
const Placeholder = "—"

func slot(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

func siteOrNA(site string) string {
	if strings.TrimSpace(site) == "" {
		return "N/A"
	}
	return site
}

func expiryText(daysLeft int) string {
	if daysLeft < 0 {
		return fmt.Sprintf("EXPIRED (%d days ago)", -daysLeft)
	}
	return fmt.Sprintf("Expires in %d days", daysLeft)
}

func percent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// BreakdownRow is one equipment type and how many assets have it.
type BreakdownRow struct {
	Type  string
	Count int
}

// sortedBreakdown orders by type name so output is stable.
func sortedBreakdown(m map[string]int) []BreakdownRow {
	rows := make([]BreakdownRow, 0, len(m))
	for k, v := range m {
		rows = append(rows, BreakdownRow{Type: k, Count: v})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Type < rows[j].Type })
	return rows
}

func statusStyle(th Theme, status string) lipgloss.Style {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "expired"):
		return th.Danger
	case s == "valid" || s == "verified":
		return th.Valid
	default:
		return th.Warning
	}
}
