package mysql

import (
	"context"

	documentDomain "workflow-platform-backend/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) Save(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepository) GetByDocumentID(ctx context.Context, documentID string) (*documentDomain.Document, error) {
	var out documentDomain.Document
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) List(ctx context.Context, f documentDomain.ListFilter) ([]documentDomain.Document, error) {
	q := r.db.WithContext(ctx).Model(&documentDomain.Document{})
	if f.SubmissionID != 0 {
		q = q.Where("submission_id = ?", f.SubmissionID)
	}
	if f.Archived != nil {
		q = q.Where("archived = ?", *f.Archived)
	}
	var out []documentDomain.Document
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) ArchiveBySubmissionID(ctx context.Context, submissionNumericID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&documentDomain.Document{}).
		Where("submission_id = ? AND archived = ?", submissionNumericID, false).
		Update("archived", true)
	return res.RowsAffected, res.Error
}
