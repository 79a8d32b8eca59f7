// Package sqlinline holds every SQL statement the service runs, as
// constants tagged with a `--sql <uuid>` audit marker on the first line.
// Statements executed through infra.SQLRunner are logged by marker;
// transactional paths strip the marker with Text before execution.
package sqlinline

import "strings"

// Text returns the statement with its audit marker line removed.
func Text(q string) string {
	trimmed := strings.TrimSpace(q)
	if idx := strings.Index(trimmed, "\n"); idx >= 0 && strings.HasPrefix(trimmed, "--sql ") {
		return trimmed[idx+1:]
	}
	return trimmed
}
