// Package output serializes extraction results to JSON.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
)

// ToJSON serializes the document. Non-ASCII text is written as UTF-8, not
// escaped.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	return marshal(doc, pretty)
}

// ProtocolToJSON serializes a single protocol.
func ProtocolToJSON(p *models.Protocol, pretty bool) ([]byte, error) {
	return marshal(p, pretty)
}

// ReportToJSON serializes any report value, such as sheet classifications.
func ReportToJSON(v any, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
