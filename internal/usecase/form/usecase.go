package form

import (
	"context"
	"errors"
	"fmt"

	domain "workflow-platform-backend/internal/domain/form"
	"workflow-platform-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type DefineInput struct {
	Name        string
	Description string
	Fields      []domain.Field
	OrgID       string
}

// Define stores a new form. Field keys must be unique within the form and
// every field type must be one of the known enumeration values; fields are
// otherwise stored verbatim.
func (u *Usecase) Define(ctx context.Context, in DefineInput) (*domain.Form, error) {
	if in.Name == "" {
		return nil, errors.New("form name is required")
	}
	if len(in.Fields) == 0 {
		return nil, errors.New("form needs at least one field")
	}
	seen := make(map[string]struct{}, len(in.Fields))
	for i, fl := range in.Fields {
		if fl.Key == "" {
			return nil, fmt.Errorf("field %d: key is required", i)
		}
		if _, dup := seen[fl.Key]; dup {
			return nil, fmt.Errorf("field key %q is duplicated", fl.Key)
		}
		seen[fl.Key] = struct{}{}
		if fl.Type == "" {
			in.Fields[i].Type = domain.FieldText
		} else if !fl.Type.Valid() {
			return nil, fmt.Errorf("field %q: unknown type %q", fl.Key, fl.Type)
		}
	}

	f := &domain.Form{
		FormID:      id.NewID32(),
		Name:        in.Name,
		Description: in.Description,
		Fields:      in.Fields,
		OrgID:       in.OrgID,
	}
	if err := u.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (u *Usecase) Get(ctx context.Context, formID string) (*domain.Form, error) {
	f, err := u.repo.GetByFormID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (u *Usecase) List(ctx context.Context, orgID string) ([]domain.Form, error) {
	return u.repo.List(ctx, orgID)
}
