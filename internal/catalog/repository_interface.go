package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, t *Treatment) (*Treatment, error)
	GetByID(ctx context.Context, id int) (*Treatment, error)
	List(ctx context.Context, activeOnly bool) ([]Treatment, error)
	Update(ctx context.Context, t *Treatment) (*Treatment, error)
	Delete(ctx context.Context, id int) error
}
