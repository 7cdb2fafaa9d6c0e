package mysql

import (
	"context"
	"testing"
	"time"

	domain "workflow-platform-backend/internal/domain/template"
	"workflow-platform-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type templateSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	Key         string    `gorm:"uniqueIndex;column:template_key"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"type:text;column:description"`
	FormID      string    `gorm:"size:32;column:form_id"`
	WorkflowID  string    `gorm:"size:32;column:workflow_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (templateSQLite) TableName() string { return "templates" }

func openTemplateTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&templateSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestTemplate_CreateCountList(t *testing.T) {
	db := openTemplateTestDB(t)
	repo := NewTemplateRepository(db)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("Count on empty table = %d, %v", n, err)
	}

	for _, key := range []domain.Key{domain.KeyInvoiceApproval, domain.KeyExpenseReimbursement} {
		tm := &domain.Template{
			Key:        key,
			Name:       string(key),
			FormID:     id.NewID32(),
			WorkflowID: id.NewID32(),
		}
		if err := repo.Create(ctx, tm); err != nil {
			t.Fatalf("Create %s: %v", key, err)
		}
	}

	n, err = repo.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v; want 2", n, err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Key != domain.KeyInvoiceApproval {
		t.Fatalf("unexpected templates: %+v", got)
	}
}
