package animals

import "context"

// Repository es el contrato de persistencia. Las implementaciones devuelven
// ErrInvalidID para ids mal formados y ErrNotFound cuando no hay registro.
type Repository interface {
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, items []Animal) ([]Animal, error)
	Insert(ctx context.Context, a Animal) (Animal, error)
	FindAll(ctx context.Context) ([]Animal, error)
	FindByID(ctx context.Context, id string) (Animal, error)
	Replace(ctx context.Context, a Animal) error
	DeleteByID(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
