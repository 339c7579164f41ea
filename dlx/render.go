package dlx

import "strings"

// FormatSolution renders a solution as text: one line per selected row,
// column names space-separated in the row's original left-to-right order.
// Presentation only; the receiver-free form keeps rendering decoupled
// from the network lifecycle.
func FormatSolution(sol Solution) string {
	var b strings.Builder
	for _, row := range sol {
		b.WriteString(strings.Join(row.Columns, " "))
		b.WriteByte('\n')
	}

	return b.String()
}
