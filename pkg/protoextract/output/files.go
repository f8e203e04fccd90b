package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
)

// WriteProtocolFiles writes one JSON file per protocol into dir and returns
// the paths written, in protocol order.
func WriteProtocolFiles(protocols []models.Protocol, dir string, pretty bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	used := make(map[string]int)
	paths := make([]string, 0, len(protocols))
	for i := range protocols {
		jsonData, err := ProtocolToJSON(&protocols[i], pretty)
		if err != nil {
			return nil, err
		}

		base := FileName(protocols[i].Name)
		used[base]++
		if n := used[base]; n > 1 {
			base = fmt.Sprintf("%s_%d", base, n)
		}

		filename := filepath.Join(dir, base+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return nil, err
		}
		paths = append(paths, filename)
	}

	return paths, nil
}

// FileName turns a protocol name into a safe file name stem.
func FileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		return "protocol"
	}
	return name
}
