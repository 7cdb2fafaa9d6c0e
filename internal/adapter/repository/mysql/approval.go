package mysql

import (
	"context"

	approvalDomain "workflow-platform-backend/internal/domain/approval"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Create(ctx context.Context, a *approvalDomain.Approval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApprovalRepository) ListBySubmissionID(ctx context.Context, submissionNumericID uint64) ([]approvalDomain.Approval, error) {
	var out []approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) CountBySubmissionID(ctx context.Context, submissionNumericID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&approvalDomain.Approval{}).
		Where("submission_id = ?", submissionNumericID).
		Count(&n)
	return n, res.Error
}

func (r *ApprovalRepository) GetByApprovalID(ctx context.Context, approvalID string) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	res := r.db.WithContext(ctx).
		Where("approval_id = ?", approvalID).
		First(&out)
	return &out, res.Error
}
