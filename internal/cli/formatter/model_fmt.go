package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// FormatModelList renders the cabinet model catalog as a table.
func FormatModelList(models []*domain.CabinetModel) string {
	headers := []string{"ID", "NAME", "PANELS", "FRONTS", "COMPARTMENTS", "DESCRIPTION"}
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{
			Dim(ShortID(m.ID)),
			Bold(m.Name),
			fmt.Sprintf("%d", len(m.Parameters.Panels)),
			fmt.Sprintf("%d", len(m.Parameters.Fronts)),
			fmt.Sprintf("%d", len(m.Parameters.Compartments)),
			Dim(m.Description),
		})
	}
	return RenderTable(headers, rows)
}

// FormatModelDetail renders a full description of a cabinet model: its
// parametric panels, fronts, compartments, and hardware lines.
func FormatModelDetail(m *domain.CabinetModel) string {
	var b strings.Builder

	b.WriteString(Header(m.Name))
	b.WriteString("\n")
	if m.Description != "" {
		b.WriteString(Dim(m.Description))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("id:"), m.ID))

	if len(m.Parameters.Panels) > 0 {
		b.WriteString("\n" + Header("Panels") + "\n")
		rows := make([][]string, 0, len(m.Parameters.Panels))
		for _, p := range m.Parameters.Panels {
			visible := StyleGreen.Render("yes")
			if !p.Visible {
				visible = Dim("no")
			}
			rows = append(rows, []string{
				p.Name,
				p.Length.String(),
				p.Width.String(),
				string(p.MaterialRole),
				visible,
			})
		}
		b.WriteString(RenderTable([]string{"NAME", "LENGTH", "WIDTH", "MATERIAL", "VISIBLE"}, rows))
	}

	if len(m.Parameters.Fronts) > 0 {
		b.WriteString("\n" + Header("Fronts") + "\n")
		rows := make([][]string, 0, len(m.Parameters.Fronts))
		for _, f := range m.Parameters.Fronts {
			rows = append(rows, []string{
				string(f.FrontType),
				f.Width.String(),
				f.Height.String(),
				fmt.Sprintf("%d", f.Quantity),
				fmt.Sprintf("%d", len(f.Hardware)),
			})
		}
		b.WriteString(RenderTable([]string{"TYPE", "WIDTH", "HEIGHT", "QTY", "HARDWARE"}, rows))
	}

	if len(m.Parameters.Compartments) > 0 {
		b.WriteString("\n" + Header("Compartments") + "\n")
		for i, c := range m.Parameters.Compartments {
			b.WriteString(fmt.Sprintf("%s %s × %s × %s\n",
				Bold(fmt.Sprintf("#%d", i+1)), c.Width.String(), c.Height.String(), c.Depth.String()))
			for _, item := range c.Items {
				b.WriteString(fmt.Sprintf("   %s ×%d\n", string(item.ItemType), item.Quantity))
			}
		}
	}

	if len(m.Parameters.Hardware) > 0 {
		b.WriteString("\n" + Header("Hardware") + "\n")
		rows := make([][]string, 0, len(m.Parameters.Hardware))
		for _, hw := range m.Parameters.Hardware {
			rows = append(rows, []string{
				hw.Name,
				hw.Quantity.String(),
				Money(hw.UnitPrice),
			})
		}
		b.WriteString(RenderTable([]string{"NAME", "QTY", "UNIT PRICE"}, rows))
	}

	labor := m.Parameters.Labor
	if labor.HourlyRate > 0 || labor.BaseMinutes > 0 {
		b.WriteString("\n" + Header("Labor") + "\n")
		b.WriteString(fmt.Sprintf("base %gm + %gm/panel + %gm/front + %gm/item at %s/h\n",
			labor.BaseMinutes, labor.PerPanelMinutes, labor.PerFrontMinutes,
			labor.PerCompartmentItemMinutes, Money(labor.HourlyRate)))
	}

	return b.String()
}
