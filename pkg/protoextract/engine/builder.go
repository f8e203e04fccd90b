package engine

import (
	"strings"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"golang.org/x/text/unicode/norm"
)

// ProtocolName derives the protocol name from the sheet name.
func ProtocolName(sheetName string, kind StrategyKind) string {
	if kind == StrategyBioEMS {
		return strings.ReplaceAll(norm.NFC.String(sheetName), bioEMSSheetMarker, "Protocolo BioEMS")
	}
	return sheetName + " - Plan Maestro"
}

// ProtocolType maps a strategy to the protocol type it produces.
func ProtocolType(kind StrategyKind) models.ProtocolType {
	if kind == StrategyBioEMS {
		return models.ProtocolBioEMS
	}
	return models.ProtocolStandard
}

// BuildProtocol groups entries into stages. Stages keep the order in which
// their names first appear; products keep row order within a stage.
func BuildProtocol(sheetName string, kind StrategyKind, entries []Entry) models.Protocol {
	stages := make([]models.Stage, 0)
	index := make(map[string]int)
	for _, e := range entries {
		i, ok := index[e.Stage]
		if !ok {
			i = len(stages)
			index[e.Stage] = i
			stages = append(stages, models.Stage{Name: e.Stage, Products: make([]models.Product, 0)})
		}
		stages[i].Products = append(stages[i].Products, e.Product)
	}

	return models.Protocol{
		Name:   ProtocolName(sheetName, kind),
		Type:   ProtocolType(kind),
		Stages: stages,
	}
}
