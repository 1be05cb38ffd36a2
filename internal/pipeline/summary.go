package pipeline

import (
	"fmt"
	"strings"
)

// FormatSummary renders the run summary for standard output.
func FormatSummary(s *Summary) string {
	var b strings.Builder

	b.WriteString("📊 Summary:\n")
	b.WriteString(fmt.Sprintf("   - Instruments processed: %d\n", s.Total))
	b.WriteString(fmt.Sprintf("   - Successful fetches: %d/%d\n", s.Succeeded, s.Total))
	b.WriteString(fmt.Sprintf("   - Failed fetches: %d/%d\n", s.Failed, s.Total))

	if s.UsedFallback {
		b.WriteString("   - Spreadsheet export failed, saved as CSV instead\n")
	}
	for _, a := range s.Artifacts {
		b.WriteString(fmt.Sprintf("   - Saved: %s\n", a))
	}

	return b.String()
}
