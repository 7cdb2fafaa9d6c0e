package mysql

import (
	"context"

	submissionDomain "workflow-platform-backend/internal/domain/submission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) Save(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

// GetBySubmissionIDForUpdate takes a row lock; callers must run it inside
// a transaction or the lock is released immediately.
func (r *SubmissionRepository) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("submission_id = ?", submissionID).
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) List(ctx context.Context, f submissionDomain.ListFilter) ([]submissionDomain.Submission, error) {
	q := r.db.WithContext(ctx).Model(&submissionDomain.Submission{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.WorkflowID != "" {
		q = q.Where("workflow_id = ?", f.WorkflowID)
	}
	var out []submissionDomain.Submission
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
