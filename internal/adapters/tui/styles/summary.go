package styles

import (
	"fmt"

	"resprune/internal/domain"
)

// FormatSummary renders "<detector> total N delete G F space X MB"
func FormatSummary(detector string, total int, count domain.Count) string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s",
		SummaryName.Render(detector),
		MutedText.Render("total"),
		SummaryValue.Render(fmt.Sprint(total)),
		MutedText.Render("delete"),
		SummaryValue.Render(fmt.Sprint(count.Groups)),
		SummaryValue.Render(fmt.Sprint(count.Files)),
		MutedText.Render("space"),
		SummaryValue.Render(fmt.Sprintf("%.2f MB", count.Megabytes())),
	)
}
