package template

import "context"

type Repository interface {
	Create(ctx context.Context, t *Template) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]Template, error)
}
