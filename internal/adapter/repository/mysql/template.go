package mysql

import (
	"context"

	templateDomain "workflow-platform-backend/internal/domain/template"

	"gorm.io/gorm"
)

type TemplateRepository struct{ db *gorm.DB }

func NewTemplateRepository(db *gorm.DB) *TemplateRepository { return &TemplateRepository{db: db} }

func (r *TemplateRepository) Create(ctx context.Context, t *templateDomain.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TemplateRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&templateDomain.Template{}).Count(&n)
	return n, res.Error
}

func (r *TemplateRepository) List(ctx context.Context) ([]templateDomain.Template, error) {
	var out []templateDomain.Template
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
