package engine

import (
	"fmt"
	"strings"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"golang.org/x/text/unicode/norm"
)

const (
	// MasterPlanHeaderRow is the fixed 0-based header row of master plan sheets.
	MasterPlanHeaderRow = 2

	bioEMSSheetMarker  = "Dosificación"
	bioEMSHeaderMarker = "Nombre comercial"
)

// StrategyKind is the parsing route chosen for a sheet.
type StrategyKind int

const (
	// StrategySkip means the sheet contributes nothing.
	StrategySkip StrategyKind = iota
	// StrategyMasterPlan parses the sheet as a master plan.
	StrategyMasterPlan
	// StrategyBioEMS parses the sheet as a BioEMS dosage protocol.
	StrategyBioEMS
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyMasterPlan:
		return "master_plan"
	case StrategyBioEMS:
		return "bioems_protocol"
	default:
		return "skip"
	}
}

// Strategy is the outcome of classifying a sheet. For StrategySkip, Err
// holds the reason and Convention the layout that was attempted.
type Strategy struct {
	Kind       StrategyKind
	Convention Convention
	// HeaderRow is the 0-based row holding the column labels; data starts below it.
	HeaderRow int
	Columns   ColumnMap
	Err       error
}

// IsBioEMSSheet reports whether a sheet name marks a BioEMS dosage sheet.
func IsBioEMSSheet(sheetName string) bool {
	return strings.Contains(norm.NFC.String(sheetName), bioEMSSheetMarker)
}

// Classify picks the layout convention for a sheet and resolves its columns.
func Classify(sheet models.Sheet) Strategy {
	if IsBioEMSSheet(sheet.Name) {
		return classifyBioEMS(sheet)
	}
	return classifyMasterPlan(sheet)
}

func classifyMasterPlan(sheet models.Sheet) Strategy {
	if len(sheet.Rows) <= MasterPlanHeaderRow {
		return skip(ConventionMasterPlan, fmt.Errorf("%w: sheet has no row %d", ErrHeaderNotFound, MasterPlanHeaderRow+1))
	}
	return resolve(ConventionMasterPlan, StrategyMasterPlan, sheet.Rows, MasterPlanHeaderRow)
}

func classifyBioEMS(sheet models.Sheet) Strategy {
	headerRow := findHeaderRow(sheet.Rows, bioEMSHeaderMarker)
	if headerRow < 0 {
		return skip(ConventionBioEMS, fmt.Errorf("%w: no row mentions %q", ErrHeaderNotFound, bioEMSHeaderMarker))
	}
	return resolve(ConventionBioEMS, StrategyBioEMS, sheet.Rows, headerRow)
}

func resolve(conv Convention, kind StrategyKind, rows [][]models.Cell, headerRow int) Strategy {
	cols := ResolveColumns(rows[headerRow], conv)
	if missing := cols.Missing(requiredFields[conv]); len(missing) > 0 {
		st := skip(conv, fmt.Errorf("%w: %v", ErrMissingColumns, missing))
		st.HeaderRow = headerRow
		st.Columns = cols
		return st
	}
	return Strategy{
		Kind:       kind,
		Convention: conv,
		HeaderRow:  headerRow,
		Columns:    cols,
	}
}

func skip(conv Convention, err error) Strategy {
	return Strategy{Kind: StrategySkip, Convention: conv, HeaderRow: -1, Err: err}
}

// findHeaderRow returns the first row whose concatenated cell text contains
// marker, or -1.
func findHeaderRow(rows [][]models.Cell, marker string) int {
	for i, row := range rows {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.Text)
		}
		if strings.Contains(norm.NFC.String(sb.String()), marker) {
			return i
		}
	}
	return -1
}
