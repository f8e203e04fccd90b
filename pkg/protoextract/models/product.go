package models

// PlaceholderUnit is the unit used when a layout has no unit column.
const PlaceholderUnit = "Kg/L"

// Product is one treatment line of a protocol, and also the shape of a
// catalog entry.
type Product struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}
