package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Money formats an amount with two decimals and a currency suffix.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f EUR", amount)
}

// Area formats square meters with three decimals.
func Area(sqm float64) string {
	return fmt.Sprintf("%.3f m²", sqm)
}

// Dimensions formats a width x height x depth triple in millimeters.
func Dimensions(w, h, d float64) string {
	return fmt.Sprintf("%.0f×%.0f×%.0f mm", w, h, d)
}

// Minutes formats a duration given in minutes as "2h 05m" or "45m".
func Minutes(min float64) string {
	whole := int(min)
	if whole < 60 {
		return fmt.Sprintf("%dm", whole)
	}
	return fmt.Sprintf("%dh %02dm", whole/60, whole%60)
}

// ShortID returns the first eight characters of an identifier.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Date formats a timestamp as a calendar date.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}
