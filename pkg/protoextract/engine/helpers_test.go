package engine

import (
	"fmt"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
)

// row builds a grid row: strings become text cells, numbers numeric cells,
// nil and "" empty cells.
func row(vals ...any) []models.Cell {
	cells := make([]models.Cell, len(vals))
	for i, v := range vals {
		switch x := v.(type) {
		case nil:
			cells[i] = models.EmptyCell()
		case string:
			cells[i] = models.StringCell(x)
		case int:
			cells[i] = models.NumberCell(float64(x))
		case float64:
			cells[i] = models.NumberCell(x)
		default:
			panic(fmt.Sprintf("unsupported cell value %T", v))
		}
	}
	return cells
}

func sheet(name string, rows ...[]models.Cell) models.Sheet {
	return models.Sheet{Name: name, Rows: rows}
}

var masterPlanHeader = row("TIPO", "FASE", "CÓDIGO", "PRODUCTO NOMBRE COMERCIAL", "DOSIS /Ha", "DOSIS 1/2 HA", "UNIDAD", "PRECIO UNITARIO", "COSTO TOTAL")

func masterPlanSheet(name string, data ...[]models.Cell) models.Sheet {
	rows := [][]models.Cell{row("PLAN MAESTRO"), row(), masterPlanHeader}
	return models.Sheet{Name: name, Rows: append(rows, data...)}
}

var bioEMSHeader = row("Semana", "Aplicación", "Nombre comercial", "Dosis (Kg,L)/Ha", "Costo unitario")
