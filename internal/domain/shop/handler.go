package shop

import (
	"errors"
	"net/http"

	"petcare-hub/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/shop", func(sr chi.Router) {
		sr.Get("/products", listHandler(svc))
		sr.Get("/products/{id}", getHandler(svc))
		sr.Get("/categories", categoriesHandler(svc))
		sr.Post("/cart/quote", quoteHandler(svc))
	})
}

type productResponse struct {
	Product
	Price string `json:"price"`
}

type quoteRequest struct {
	Items []CartLine `json:"items"`
}

type quoteResponse struct {
	Quote
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// listHandler godoc
// @Summary Listar productos
// @Tags shop
// @Produce json
// @Param q query string false "Texto en nombre o descripción"
// @Param category query string false "Categoría o all"
// @Param sort query string false "featured | price-low | price-high | rating"
// @Param min_price query number false "Precio mínimo en dólares"
// @Param max_price query number false "Precio máximo en dólares"
// @Success 200 {array} productResponse
// @Failure 400 {string} string "invalid input"
// @Router /shop/products [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := r.URL.Query()
		items, err := svc.List(r.Context(), Query{
			Text:     v.Get("q"),
			Category: v.Get("category"),
			Sort:     v.Get("sort"),
			MinPrice: v.Get("min_price"),
			MaxPrice: v.Get("max_price"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, productResponse{Product: p, Price: FormatCents(p.PriceCents)})
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, productResponse{Product: p, Price: FormatCents(p.PriceCents)})
	}
}

func categoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.Categories(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, cats)
	}
}

// quoteHandler godoc
// @Summary Cotizar carrito
// @Description Calcula subtotal, envío (gratis sobre $50), impuesto 8% y total. No guarda estado.
// @Tags shop
// @Accept json
// @Produce json
// @Param payload body quoteRequest true "Líneas del carrito"
// @Success 200 {object} quoteResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "product out of stock"
// @Router /shop/cart/quote [post]
func quoteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := httpjson.Decode(w, r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		q, err := svc.Quote(r.Context(), req.Items)
		if err != nil {
			writeError(w, err)
			return
		}

		httpjson.Write(w, http.StatusOK, quoteResponse{
			Quote:    q,
			Subtotal: FormatCents(q.SubtotalCents),
			Shipping: FormatCents(q.ShippingCents),
			Tax:      FormatCents(q.TaxCents),
			Total:    FormatCents(q.TotalCents),
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrOutOfStock):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
