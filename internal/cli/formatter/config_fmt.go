package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// FormatConfigurationList renders cabinet configurations as a table.
func FormatConfigurationList(configs []*domain.CabinetConfiguration) string {
	headers := []string{"ID", "NAME", "DIMENSIONS", "CREATED"}
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			Dim(ShortID(c.ID)),
			Bold(c.DisplayID()),
			Dimensions(c.WidthMM, c.HeightMM, c.DepthMM),
			Dim(Date(c.CreatedAt)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatConfigurationDetail renders one configuration with its material
// choices resolved to catalog names where available.
func FormatConfigurationDetail(c *domain.CabinetConfiguration, materials map[string]domain.Material) string {
	var b strings.Builder

	b.WriteString(Header(c.DisplayID()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("id:"), c.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("model:"), c.ModelID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("size:"), Dimensions(c.WidthMM, c.HeightMM, c.DepthMM)))

	b.WriteString("\n" + Header("Materials") + "\n")
	rows := [][]string{
		materialRow("body", c.Materials.BodyMaterialID, c.Materials.BodyThickness(), materials),
		materialRow("door", c.Materials.DoorMaterialID, c.Materials.DoorThickness(), materials),
		materialRow("shelf", c.Materials.ShelfMaterialID, c.Materials.ShelfThickness(), materials),
	}
	b.WriteString(RenderTable([]string{"ROLE", "MATERIAL", "THICKNESS"}, rows))

	return b.String()
}

func materialRow(role, id string, thickness float64, materials map[string]domain.Material) []string {
	name := Dim("(none)")
	if id != "" {
		name = ShortID(id)
		if m, ok := materials[id]; ok {
			name = m.Name
		}
	}
	return []string{role, name, fmt.Sprintf("%.0f mm", thickness)}
}
