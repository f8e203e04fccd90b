package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
)

// Entry is one normalized data row: the stage it belongs to and its product.
type Entry struct {
	Stage   string
	Product models.Product
}

// fillState carries the last non-blank value of each forward-filled column.
// A zero fillState starts every sheet.
type fillState struct {
	stage       string
	week        string
	application string
}

type rowFunc func(cols ColumnMap, state fillState, row []models.Cell) (fillState, Entry, bool)

// Normalize walks the data rows below the strategy's header row and returns
// the emitted entries in row order. Skip strategies yield nothing.
func Normalize(sheet models.Sheet, st Strategy) []Entry {
	var next rowFunc
	switch st.Kind {
	case StrategyMasterPlan:
		next = masterPlanRow
	case StrategyBioEMS:
		next = bioEMSRow
	default:
		return nil
	}
	if st.HeaderRow < 0 || st.HeaderRow >= len(sheet.Rows) {
		return nil
	}

	var (
		state   fillState
		entries []Entry
	)
	for _, row := range sheet.Rows[st.HeaderRow+1:] {
		var (
			entry Entry
			ok    bool
		)
		state, entry, ok = next(st.Columns, state, row)
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func masterPlanRow(cols ColumnMap, state fillState, row []models.Cell) (fillState, Entry, bool) {
	state.stage = forwardFill(state.stage, cols.Cell(row, FieldStage))

	name := cols.Cell(row, FieldName).String()
	if name == "" {
		return state, Entry{}, false
	}

	return state, Entry{
		Stage: state.stage,
		Product: models.Product{
			Code:     cols.Cell(row, FieldCode).String(),
			Name:     name,
			Quantity: parseAmount(cols.Cell(row, FieldQuantity)),
			Unit:     cols.Cell(row, FieldUnit).String(),
			Price:    parseAmount(cols.Cell(row, FieldPrice)),
		},
	}, true
}

func bioEMSRow(cols ColumnMap, state fillState, row []models.Cell) (fillState, Entry, bool) {
	state.week = forwardFill(state.week, cols.Cell(row, FieldWeek))
	state.application = forwardFill(state.application, cols.Cell(row, FieldApplication))

	name := cols.Cell(row, FieldName).String()
	if name == "" || strings.EqualFold(name, "total") {
		return state, Entry{}, false
	}

	return state, Entry{
		Stage: bioEMSStageLabel(state.week, state.application),
		Product: models.Product{
			Name:     name,
			Quantity: parseAmount(cols.Cell(row, FieldQuantity)),
			Unit:     models.PlaceholderUnit,
			Price:    parseAmount(cols.Cell(row, FieldPrice)),
		},
	}, true
}

// bioEMSStageLabel builds "Semana {week} - {application}". Without a week the
// "Semana -" prefix is dropped and only the application remains.
func bioEMSStageLabel(week, application string) string {
	if week == "" {
		return application
	}
	return strings.TrimSpace("Semana " + week + " - " + application)
}

// forwardFill returns the cell's text, or prev when the cell is blank.
func forwardFill(prev string, c models.Cell) string {
	if c.IsBlank() {
		return prev
	}
	return c.String()
}

// parseAmount reads a quantity or price. Blank, non-numeric, non-finite and
// negative values all read as 0.
func parseAmount(c models.Cell) float64 {
	var f float64
	switch c.Kind {
	case models.CellNumber:
		f = c.Number
	case models.CellString:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0
		}
		f = v
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return f
}
