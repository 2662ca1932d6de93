package area

import "context"

type Repository interface {
	Create(ctx context.Context, a *Area) error
	GetByID(ctx context.Context, id uint) (*Area, error)
	List(ctx context.Context, limit, offset int) ([]*Area, int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
