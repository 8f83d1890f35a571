package formatter

import (
	"fmt"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// FormatMaterialList renders the material catalog as a table.
func FormatMaterialList(materials []*domain.Material) string {
	headers := []string{"ID", "NAME", "CATEGORY", "COST/M²", "WASTE"}
	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		waste := Dim("default")
		if m.WasteFactor != nil {
			waste = fmt.Sprintf("%.2f", *m.WasteFactor)
		}
		rows = append(rows, []string{
			Dim(ShortID(m.ID)),
			m.Name,
			m.Category,
			Money(m.CostPerSqm),
			waste,
		})
	}
	return RenderTable(headers, rows)
}

// FormatProductList renders the hardware product catalog as a table.
func FormatProductList(products []*domain.Product) string {
	headers := []string{"ID", "NAME", "UNIT PRICE"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			Dim(ShortID(p.ID)),
			p.Name,
			Money(p.UnitPrice),
		})
	}
	return RenderTable(headers, rows)
}
