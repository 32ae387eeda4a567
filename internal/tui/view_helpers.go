package tui

import (
	"strings"

	"github.com/MKhiriev/vibechef/models"
)

const timestampLayout = "2006-01-02 15:04"

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.NotAvailable
	}
	return v
}

func formatTimestamp(r models.Recipe) string {
	return r.CreatedAt().Format(timestampLayout)
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
