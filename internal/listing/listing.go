// Package listing arma la vista filtrada y ordenada de una colección en
// memoria a partir de los filtros elegidos en la UI.
//
// Cada página de listado construye un View con sus query params y llama a
// Apply. El slice de entrada no se modifica y el resultado es siempre un
// slice nuevo y no nil: una vista vacía se serializa como [] y no null.
package listing

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// All es el valor que manda un select cuando no hay nada elegido.
const All = "all"

// Predicate indica si un registro entra en la vista.
// Un Predicate nil está desactivado y acepta todo.
type Predicate[T any] func(T) bool

// Disabled indica si el valor de un select significa "sin filtro".
func Disabled(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}

// Contains acepta si algún campo contiene query, sin distinguir mayúsculas.
func Contains[T any](query string, fields func(T) []string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(rec T) bool {
		for _, f := range fields(rec) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals acepta si field es igual a selected, sin distinguir mayúsculas.
func Equals[T any](selected string, field func(T) string) Predicate[T] {
	if Disabled(selected) {
		return nil
	}
	want := strings.TrimSpace(selected)
	return func(rec T) bool {
		return strings.EqualFold(strings.TrimSpace(field(rec)), want)
	}
}

// OneOf acepta si field es igual a alguno de los valores elegidos.
// Los valores vacíos o "all" se ignoran.
func OneOf[T any](selected []string, field func(T) string) Predicate[T] {
	want := make([]string, 0, len(selected))
	for _, s := range selected {
		if !Disabled(s) {
			want = append(want, strings.TrimSpace(s))
		}
	}
	if len(want) == 0 {
		return nil
	}
	return func(rec T) bool {
		got := strings.TrimSpace(field(rec))
		for _, w := range want {
			if strings.EqualFold(got, w) {
				return true
			}
		}
		return false
	}
}

// Range es un intervalo numérico cerrado; un extremo nil queda abierto.
type Range struct {
	Min *float64
	Max *float64
}

func (r Range) IsZero() bool { return r.Min == nil && r.Max == nil }

// InRange acepta si field cae dentro de r.
func InRange[T any](r Range, field func(T) float64) Predicate[T] {
	if r.IsZero() {
		return nil
	}
	return func(rec T) bool {
		v := field(rec)
		if r.Min != nil && v < *r.Min {
			return false
		}
		if r.Max != nil && v > *r.Max {
			return false
		}
		return true
	}
}

// Between acepta si field cae en [from, to]; los extremos nil quedan abiertos.
func Between[T any](from, to *time.Time, field func(T) time.Time) Predicate[T] {
	if from == nil && to == nil {
		return nil
	}
	return func(rec T) bool {
		v := field(rec)
		if from != nil && v.Before(*from) {
			return false
		}
		if to != nil && v.After(*to) {
			return false
		}
		return true
	}
}

// Or acepta si alguno de preds acepta. Si alguno está desactivado, el Or
// completo también.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	if len(preds) == 0 {
		return nil
	}
	for _, p := range preds {
		if p == nil {
			return nil
		}
	}
	return func(rec T) bool {
		for _, p := range preds {
			if p(rec) {
				return true
			}
		}
		return false
	}
}

type Direction int

const (
	Asc Direction = iota
	Desc
)

// Order ordena por una clave numérica. Con Key nil se mantiene el orden de entrada.
type Order[T any] struct {
	Key func(T) float64
	Dir Direction
}

// By es un atajo para armar un Order.
func By[T any](key func(T) float64, dir Direction) Order[T] {
	return Order[T]{Key: key, Dir: dir}
}

// View es el estado (inmutable) de los filtros de una página.
type View[T any] struct {
	Predicates []Predicate[T]
	Order      Order[T]
}

// Where agrega predicados y devuelve la vista actualizada.
func (v View[T]) Where(preds ...Predicate[T]) View[T] {
	out := make([]Predicate[T], 0, len(v.Predicates)+len(preds))
	out = append(out, v.Predicates...)
	out = append(out, preds...)
	v.Predicates = out
	return v
}

// Filter deja los registros que cumplen todos los predicados activos.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(items))
	for _, rec := range items {
		keep := true
		for _, p := range active {
			if !p(rec) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out
}

// Sorted devuelve una copia de items con orden estable.
func Sorted[T any](items []T, o Order[T]) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	if o.Key == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		if o.Dir == Desc {
			return cmp.Compare(o.Key(b), o.Key(a))
		}
		return cmp.Compare(o.Key(a), o.Key(b))
	})
	return out
}

// Apply filtra por v.Predicates y después ordena por v.Order.
func Apply[T any](items []T, v View[T]) []T {
	out := Filter(items, v.Predicates...)
	if v.Order.Key == nil {
		return out
	}
	return Sorted(out, v.Order)
}

// Limit recorta a n registros como máximo; n <= 0 es sin límite.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
