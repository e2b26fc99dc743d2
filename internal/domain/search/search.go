// Package search implementa la búsqueda global sobre los catálogos públicos.
package search

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"petcare-hub/internal/domain/adoption"
	"petcare-hub/internal/domain/lostfound"
	"petcare-hub/internal/domain/shop"
	"petcare-hub/internal/domain/training"
	"petcare-hub/internal/listing"
	"petcare-hub/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidInput = errors.New("invalid input")

// MaxPerSection limita los resultados de cada sección.
const MaxPerSection = 5

type AdoptionLister interface {
	List(ctx context.Context, q adoption.Query) ([]adoption.Pet, error)
}

type ProductLister interface {
	List(ctx context.Context, q shop.Query) ([]shop.Product, error)
}

type ArticleLister interface {
	Articles(ctx context.Context, q training.ArticleQuery) ([]training.Article, error)
}

type ReportLister interface {
	List(ctx context.Context, q lostfound.Query) ([]lostfound.Report, error)
}

type Results struct {
	Query    string             `json:"query"`
	Adoption []adoption.Pet     `json:"adoption"`
	Products []shop.Product     `json:"products"`
	Articles []training.Article `json:"articles"`
	Reports  []lostfound.Report `json:"lost_found"`
}

type Service struct {
	adoption AdoptionLister
	products ProductLister
	articles ArticleLister
	reports  ReportLister
}

func NewService(a AdoptionLister, p ProductLister, ar ArticleLister, r ReportLister) *Service {
	return &Service{adoption: a, products: p, articles: ar, reports: r}
}

// Search consulta las cuatro secciones en paralelo. Si una falla se cancela el resto.
func (s *Service) Search(ctx context.Context, q string) (Results, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return Results{}, ErrInvalidInput
	}

	res := Results{Query: q}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.adoption.List(gctx, adoption.Query{Text: q})
		res.Adoption = listing.Limit(items, MaxPerSection)
		return err
	})
	g.Go(func() error {
		items, err := s.products.List(gctx, shop.Query{Text: q})
		res.Products = listing.Limit(items, MaxPerSection)
		return err
	})
	g.Go(func() error {
		items, err := s.articles.Articles(gctx, training.ArticleQuery{Text: q})
		res.Articles = listing.Limit(items, MaxPerSection)
		return err
	})
	g.Go(func() error {
		items, err := s.reports.List(gctx, lostfound.Query{Text: q})
		res.Reports = listing.Limit(items, MaxPerSection)
		return err
	})

	if err := g.Wait(); err != nil {
		return Results{}, err
	}
	return res, nil
}

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/search", func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "q is required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		httpjson.Write(w, http.StatusOK, res)
	})
}
