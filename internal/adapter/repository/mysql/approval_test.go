package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "workflow-platform-backend/internal/domain/approval"
	"workflow-platform-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type approvalSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	ApprovalID   string    `gorm:"size:32;uniqueIndex;column:approval_id"`
	SubmissionID uint64    `gorm:"column:submission_id"`
	StepName     string    `gorm:"column:step_name"`
	ActorID      string    `gorm:"size:32;column:actor_id"`
	Action       string    `gorm:"type:text;column:action"` // ← no enum
	Comment      string    `gorm:"type:text;column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (approvalSQLite) TableName() string { return "approvals" }

func openApprovalTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&approvalSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeApproval(approvalID string, submissionNumericID uint64, action domain.Action) *domain.Approval {
	return &domain.Approval{
		ApprovalID:   approvalID,
		SubmissionID: submissionNumericID,
		StepName:     "Manager Review",
		ActorID:      "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Action:       action,
		Comment:      "looks good",
	}
}

func TestApproval_CreateAndGet(t *testing.T) {
	db := openApprovalTestDB(t)
	repo := NewApprovalRepository(db)
	ctx := context.Background()

	apprID := id.NewID32()
	if err := repo.Create(ctx, makeApproval(apprID, 777, domain.ActionApproved)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByApprovalID(ctx, apprID)
	if err != nil {
		t.Fatalf("GetByApprovalID: %v", err)
	}
	if got.SubmissionID != 777 || got.Action != domain.ActionApproved {
		t.Errorf("unexpected row: %+v", got)
	}
}

func TestApproval_ListOrderedBySubmission(t *testing.T) {
	db := openApprovalTestDB(t)
	repo := NewApprovalRepository(db)
	ctx := context.Background()

	first := makeApproval(id.NewID32(), 42, domain.ActionApproved)
	second := makeApproval(id.NewID32(), 42, domain.ActionRejected)
	second.StepName = "Finance Approval"
	other := makeApproval(id.NewID32(), 99, domain.ActionApproved)
	for _, a := range []*domain.Approval{first, second, other} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListBySubmissionID(ctx, 42)
	if err != nil {
		t.Fatalf("ListBySubmissionID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Insertion order: the audit trail reads oldest first.
	if got[0].ApprovalID != first.ApprovalID || got[1].ApprovalID != second.ApprovalID {
		t.Errorf("trail out of order: %+v", got)
	}

	n, err := repo.CountBySubmissionID(ctx, 42)
	if err != nil || n != 2 {
		t.Fatalf("CountBySubmissionID = %d, %v; want 2", n, err)
	}
}

func TestApproval_NotFound(t *testing.T) {
	db := openApprovalTestDB(t)
	repo := NewApprovalRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByApprovalID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	got, err := repo.ListBySubmissionID(ctx, 12345)
	if err != nil {
		t.Fatalf("ListBySubmissionID: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty trail, got %d rows", len(got))
	}
}
