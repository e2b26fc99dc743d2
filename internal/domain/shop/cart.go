package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// Envío gratis cuando el subtotal supera este monto (estrictamente mayor).
	FreeShippingOverCents int64 = 5000
	FlatShippingCents     int64 = 999
	TaxRatePercent        int64 = 8

	// Tope de unidades por producto y por carrito.
	MaxLineQuantity = 999
	MaxCartQuantity = 9999
)

var ErrOutOfStock = errors.New("product out of stock")

type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type QuoteLine struct {
	Product        Product `json:"product"`
	Quantity       int     `json:"quantity"`
	LineTotalCents int64   `json:"line_total_cents"`
}

// Quote es el resumen del carrito: subtotal, envío, impuesto y total.
type Quote struct {
	Lines         []QuoteLine `json:"lines"`
	ItemCount     int         `json:"item_count"`
	SubtotalCents int64       `json:"subtotal_cents"`
	ShippingCents int64       `json:"shipping_cents"`
	TaxCents      int64       `json:"tax_cents"`
	TotalCents    int64       `json:"total_cents"`
	// Cuánto falta para envío gratis (0 si ya aplica).
	FreeShippingGapCents int64 `json:"free_shipping_gap_cents"`
}

// Quote calcula el total del carrito sin guardar estado. Las líneas con el
// mismo producto se suman respetando el orden de primera aparición.
func (s *Service) Quote(ctx context.Context, lines []CartLine) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	items, err := s.src.Snapshot(ctx)
	if err != nil {
		return Quote{}, err
	}
	byID := make(map[string]Product, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}

	q := Quote{Lines: make([]QuoteLine, 0, len(lines))}
	index := make(map[string]int)
	for _, l := range lines {
		id := strings.TrimSpace(l.ProductID)
		if l.Quantity <= 0 {
			return Quote{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		if l.Quantity > MaxLineQuantity {
			return Quote{}, fmt.Errorf("%w: quantity above %d", ErrInvalidInput, MaxLineQuantity)
		}
		p, ok := byID[id]
		if !ok {
			return Quote{}, fmt.Errorf("%w: unknown product %q", ErrInvalidInput, id)
		}
		if !p.InStock {
			return Quote{}, fmt.Errorf("%w: %s", ErrOutOfStock, p.Name)
		}

		if i, seen := index[id]; seen {
			if q.Lines[i].Quantity+l.Quantity > MaxLineQuantity {
				return Quote{}, fmt.Errorf("%w: quantity above %d", ErrInvalidInput, MaxLineQuantity)
			}
			q.Lines[i].Quantity += l.Quantity
			q.Lines[i].LineTotalCents = p.PriceCents * int64(q.Lines[i].Quantity)
		} else {
			index[id] = len(q.Lines)
			q.Lines = append(q.Lines, QuoteLine{
				Product:        p,
				Quantity:       l.Quantity,
				LineTotalCents: p.PriceCents * int64(l.Quantity),
			})
		}
	}

	for _, l := range q.Lines {
		q.ItemCount += l.Quantity
		q.SubtotalCents += l.LineTotalCents
	}
	if q.ItemCount > MaxCartQuantity {
		return Quote{}, fmt.Errorf("%w: cart above %d items", ErrInvalidInput, MaxCartQuantity)
	}

	q.ShippingCents = FlatShippingCents
	q.FreeShippingGapCents = FreeShippingOverCents - q.SubtotalCents
	if q.SubtotalCents > FreeShippingOverCents {
		q.ShippingCents = 0
		q.FreeShippingGapCents = 0
	}
	if q.FreeShippingGapCents < 0 {
		q.FreeShippingGapCents = 0
	}

	// redondeo half-up a centavos
	q.TaxCents = (q.SubtotalCents*TaxRatePercent + 50) / 100
	q.TotalCents = q.SubtotalCents + q.ShippingCents + q.TaxCents
	return q, nil
}
