package pdf

import (
	"bytes"
	"strings"
	"testing"

	domain "workflow-platform-backend/internal/domain/document"
)

func TestRender(t *testing.T) {
	g := NewGenerator()
	out, err := g.Render(domain.Snapshot{
		SubmissionID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Status:       "approved",
		Data: map[string]any{
			"vendor": "Acme Corp",
			"amount": 1299.50,
			"note":   strings.Repeat("x", 400),
		},
	}, "Invoice Summary")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", out[:min(16, len(out))])
	}
	if len(out) < 500 {
		t.Fatalf("output suspiciously small: %d bytes", len(out))
	}
}

func TestRender_EmptyData(t *testing.T) {
	out, err := NewGenerator().Render(domain.Snapshot{
		SubmissionID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Status:       "pending",
	}, "Submission Summary")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header")
	}
}
