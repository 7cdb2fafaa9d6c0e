package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "workflow-platform-backend/internal/domain/form"
	"workflow-platform-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (fields stored as text) ---

type formSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	FormID      string    `gorm:"size:32;uniqueIndex;column:form_id"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"type:text;column:description"`
	Fields      string    `gorm:"type:text;column:fields"`
	OrgID       string    `gorm:"size:32;column:org_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (formSQLite) TableName() string { return "forms" }

func openFormTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&formSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestForm_CreateAndGet(t *testing.T) {
	db := openFormTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	formID := id.NewID32()
	f := &domain.Form{
		FormID:      formID,
		Name:        "Invoice Approval",
		Description: "Submit vendor invoice for approval",
		Fields: []domain.Field{
			{Key: "vendor", Label: "Vendor", Type: domain.FieldText, Required: true},
			{Key: "category", Label: "Category", Type: domain.FieldSelect, Options: []string{"Travel", "Meals"}},
		},
	}
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByFormID(ctx, formID)
	if err != nil {
		t.Fatalf("GetByFormID: %v", err)
	}
	// The field schema round-trips through the JSON column intact.
	if len(got.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(got.Fields))
	}
	if got.Fields[0].Key != "vendor" || !got.Fields[0].Required {
		t.Errorf("first field mangled: %+v", got.Fields[0])
	}
	if got.Fields[1].Type != domain.FieldSelect || len(got.Fields[1].Options) != 2 {
		t.Errorf("select field mangled: %+v", got.Fields[1])
	}
}

func TestForm_NotFound(t *testing.T) {
	db := openFormTestDB(t)
	repo := NewFormRepository(db)

	_, err := repo.GetByFormID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestForm_ListByOrg(t *testing.T) {
	db := openFormTestDB(t)
	repo := NewFormRepository(db)
	ctx := context.Background()

	orgA := id.NewID32()
	orgB := id.NewID32()
	for _, org := range []string{orgA, orgA, orgB} {
		f := &domain.Form{
			FormID: id.NewID32(),
			Name:   "F",
			Fields: []domain.Field{{Key: "k", Type: domain.FieldText}},
			OrgID:  org,
		}
		if err := repo.Create(ctx, f); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx, "")
	if err != nil || len(all) != 3 {
		t.Fatalf("List all = %d, %v; want 3", len(all), err)
	}
	scoped, err := repo.List(ctx, orgA)
	if err != nil || len(scoped) != 2 {
		t.Fatalf("List org = %d, %v; want 2", len(scoped), err)
	}
}
