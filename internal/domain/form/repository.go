package form

import "context"

type Repository interface {
	Create(ctx context.Context, f *Form) error
	GetByFormID(ctx context.Context, formID string) (*Form, error)
	// List returns forms, optionally scoped to one organization (empty = all).
	List(ctx context.Context, orgID string) ([]Form, error)
}
