package engine

import (
	"strings"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is the deduplicated product set of a run, keyed by CatalogKey and
// kept in first-seen order. It is not safe for concurrent use.
type Catalog struct {
	keys    []string
	entries map[string]models.Product
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]models.Product)}
}

// CatalogKey is the normalized identity of a product name: trimmed and
// upper-cased with full Unicode case mapping.
func CatalogKey(name string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(name))
}

// Add folds one product into the catalog. The first product seen for a key
// is stored as is; later ones only amend it.
func (c *Catalog) Add(p models.Product) {
	key := CatalogKey(p.Name)
	existing, ok := c.entries[key]
	if !ok {
		c.keys = append(c.keys, key)
		c.entries[key] = p
		return
	}
	c.entries[key] = Amend(existing, p)
}

// Fold adds every product in order and returns the catalog.
func (c *Catalog) Fold(products []models.Product) *Catalog {
	for _, p := range products {
		c.Add(p)
	}
	return c
}

// Get returns the entry stored for a product name.
func (c *Catalog) Get(name string) (models.Product, bool) {
	p, ok := c.entries[CatalogKey(name)]
	return p, ok
}

// Len returns the number of distinct products.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Products returns the entries in first-seen order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.entries[k])
	}
	return out
}

// Amend merges a later observation into an existing entry. An empty code is
// filled in, and the placeholder unit gives way to a real one. Name,
// quantity and price always keep their first-seen values.
func Amend(existing, incoming models.Product) models.Product {
	if existing.Code == "" && incoming.Code != "" {
		existing.Code = incoming.Code
	}
	if existing.Unit == models.PlaceholderUnit && incoming.Unit != "" && incoming.Unit != models.PlaceholderUnit {
		existing.Unit = incoming.Unit
	}
	return existing
}
