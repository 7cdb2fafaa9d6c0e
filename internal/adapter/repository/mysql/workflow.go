package mysql

import (
	"context"

	workflowDomain "workflow-platform-backend/internal/domain/workflow"

	"gorm.io/gorm"
)

type WorkflowRepository struct{ db *gorm.DB }

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository { return &WorkflowRepository{db: db} }

func (r *WorkflowRepository) Create(ctx context.Context, w *workflowDomain.Workflow) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkflowRepository) GetByWorkflowID(ctx context.Context, workflowID string) (*workflowDomain.Workflow, error) {
	var out workflowDomain.Workflow
	res := r.db.WithContext(ctx).Where("workflow_id = ?", workflowID).First(&out)
	return &out, res.Error
}

func (r *WorkflowRepository) List(ctx context.Context, orgID, category string) ([]workflowDomain.Workflow, error) {
	q := r.db.WithContext(ctx).Model(&workflowDomain.Workflow{})
	if orgID != "" {
		q = q.Where("org_id = ?", orgID)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []workflowDomain.Workflow
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
