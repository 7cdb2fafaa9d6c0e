package mysql

import (
	"context"

	"workflow-platform-backend/internal/domain/submission"
	"workflow-platform-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Forms:       &FormRepository{db: tx},
		Workflows:   &WorkflowRepository{db: tx},
		Submissions: &SubmissionRepository{db: tx},
		Approvals:   &ApprovalRepository{db: tx},
		Documents:   &DocumentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinSubmissionTx(ctx context.Context, submissionID string, fn func(r uow.Repos, s *submission.Submission) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the submission row up-front to prevent races
		s, err := r.Submissions.GetBySubmissionIDForUpdate(ctx, submissionID)
		if err != nil {
			return err
		}
		return fn(r, s)
	})
}
