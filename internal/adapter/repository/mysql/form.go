package mysql

import (
	"context"

	formDomain "workflow-platform-backend/internal/domain/form"

	"gorm.io/gorm"
)

type FormRepository struct{ db *gorm.DB }

func NewFormRepository(db *gorm.DB) *FormRepository { return &FormRepository{db: db} }

func (r *FormRepository) Create(ctx context.Context, f *formDomain.Form) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FormRepository) GetByFormID(ctx context.Context, formID string) (*formDomain.Form, error) {
	var out formDomain.Form
	res := r.db.WithContext(ctx).Where("form_id = ?", formID).First(&out)
	return &out, res.Error
}

func (r *FormRepository) List(ctx context.Context, orgID string) ([]formDomain.Form, error) {
	q := r.db.WithContext(ctx).Model(&formDomain.Form{})
	if orgID != "" {
		q = q.Where("org_id = ?", orgID)
	}
	var out []formDomain.Form
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
