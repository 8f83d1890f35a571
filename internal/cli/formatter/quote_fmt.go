package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// FormatQuoteList renders stored quotes as a table.
func FormatQuoteList(quotes []*domain.Quote) string {
	headers := []string{"ID", "LABEL", "STATUS", "TOTAL", "CREATED"}
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		label := q.Label
		if label == "" {
			label = Dim("(unlabeled)")
		}
		rows = append(rows, []string{
			Dim(ShortID(q.ID)),
			label,
			StatusIndicator(q.Status),
			Bold(Money(q.TotalCost)),
			Dim(Date(q.CreatedAt)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatBreakdown renders the full cost breakdown: areas, hardware lines,
// labor, and the subtotal-to-total ladder.
func FormatBreakdown(b domain.CostBreakdown) string {
	var sb strings.Builder

	sb.WriteString(Header("Material Areas") + "\n")
	sb.WriteString(RenderTable(
		[]string{"ROLE", "AREA"},
		[][]string{
			{"body", Area(b.MaterialAreas.Body)},
			{"door", Area(b.MaterialAreas.Door)},
			{"shelf", Area(b.MaterialAreas.Shelf)},
			{Bold("total"), Bold(Area(b.MaterialAreas.Total))},
		},
	))

	if len(b.HardwareItems) > 0 {
		sb.WriteString("\n" + Header("Hardware") + "\n")
		rows := make([][]string, 0, len(b.HardwareItems))
		for _, item := range b.HardwareItems {
			rows = append(rows, []string{
				item.Name,
				fmt.Sprintf("%d", item.Quantity),
				Money(item.UnitPrice),
				Money(item.LineTotal),
			})
		}
		sb.WriteString(RenderTable([]string{"ITEM", "QTY", "UNIT", "LINE"}, rows))
	}

	sb.WriteString("\n" + Header("Costs") + "\n")
	sb.WriteString(costLine("Materials", b.MaterialsCost))
	sb.WriteString(costLine("Hardware", b.HardwareCost))
	sb.WriteString(fmt.Sprintf("%-12s %14s  %s\n", "Labor", Money(b.LaborCost), Dim("("+Minutes(b.LaborMinutes)+")")))
	sb.WriteString(costLine("Subtotal", b.Subtotal))
	sb.WriteString(fmt.Sprintf("%-12s %14s  %s\n", "Overhead", Money(b.OverheadCost), Dim(fmt.Sprintf("(%.0f%%)", b.OverheadPercentage))))
	if b.MarginAmount != 0 || b.MarginPercentage != 0 {
		sb.WriteString(fmt.Sprintf("%-12s %14s  %s\n", "Margin", Money(b.MarginAmount), Dim(fmt.Sprintf("(%.0f%%)", b.MarginPercentage))))
	}
	if b.TaxAmount != 0 || b.TaxPercentage != 0 {
		sb.WriteString(fmt.Sprintf("%-12s %14s  %s\n", "Tax", Money(b.TaxAmount), Dim(fmt.Sprintf("(%.0f%%)", b.TaxPercentage))))
	}
	sb.WriteString(StyleBold.Render(fmt.Sprintf("%-12s %14s", "Total", Money(b.TotalCost))) + "\n")

	return sb.String()
}

func costLine(label string, amount float64) string {
	return fmt.Sprintf("%-12s %14s\n", label, Money(amount))
}

// FormatWarnings renders pricing diagnostics, one per line.
func FormatWarnings(warnings []domain.Diagnostic) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(StyleYellow.Render(fmt.Sprintf("%d warning(s):", len(warnings))) + "\n")
	for _, w := range warnings {
		sb.WriteString(fmt.Sprintf("  %s %s: %s\n", StyleYellow.Render("!"), w.Location, w.Reason))
	}
	return sb.String()
}
