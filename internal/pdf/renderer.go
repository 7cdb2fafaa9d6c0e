package pdf

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/jung-kurt/gofpdf"

	domain "workflow-platform-backend/internal/domain/document"
)

const (
	marginPt = 72.0
	lineMax  = 110
)

// Generator renders a submission snapshot to a one-or-more page letter
// PDF: title, submission id, status, then one line per data key.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

func (g *Generator) Render(snap domain.Snapshot, title string) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetTitle(title, false)
	doc.SetMargins(marginPt, marginPt, marginPt)
	doc.SetAutoPageBreak(true, marginPt)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 24, title, "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 16, fmt.Sprintf("Submission ID: %s", snap.SubmissionID), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 24, fmt.Sprintf("Status: %s", snap.Status), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 18, "Data:", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	keys := make([]string, 0, len(snap.Data))
	for k := range snap.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line := fmt.Sprintf("- %s: %v", k, snap.Data[k])
		if len(line) > lineMax {
			line = line[:lineMax]
		}
		doc.CellFormat(0, 14, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
