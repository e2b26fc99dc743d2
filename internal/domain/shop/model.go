package shop

import "fmt"

// Product es un artículo del catálogo. Precios en centavos.
type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	PriceCents  int64   `json:"price_cents" yaml:"price_cents"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Reviews     int     `json:"reviews" yaml:"reviews"`
	Image       string  `json:"image" yaml:"image"`
	Description string  `json:"description" yaml:"description"`
	InStock     bool    `json:"in_stock" yaml:"in_stock"`
}

// FormatCents formatea centavos como "$12.34".
func FormatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}
