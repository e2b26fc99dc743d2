package snapshot

import (
	"context"
	"slices"
)

// Source entrega una copia puntual (snapshot) de una colección.
// Puede venir de un array fijo (catálogo) o de un repositorio persistido;
// los servicios de listado solo ven el slice ya resuelto.
type Source[T any] interface {
	Snapshot(ctx context.Context) ([]T, error)
}

// Func adapta una función a Source.
type Func[T any] func(ctx context.Context) ([]T, error)

func (f Func[T]) Snapshot(ctx context.Context) ([]T, error) { return f(ctx) }

// Static sirve siempre los mismos registros. Cada llamada devuelve una copia
// para que nadie pueda mutar el catálogo compartido.
type Static[T any] struct {
	items []T
}

func NewStatic[T any](items []T) Static[T] {
	return Static[T]{items: slices.Clone(items)}
}

func (s Static[T]) Snapshot(_ context.Context) ([]T, error) {
	out := slices.Clone(s.items)
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Concat une varias fuentes en orden.
func Concat[T any](sources ...Source[T]) Source[T] {
	return Func[T](func(ctx context.Context) ([]T, error) {
		out := make([]T, 0)
		for _, s := range sources {
			items, err := s.Snapshot(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, items...)
		}
		return out, nil
	})
}
