package workflow

import "context"

type Repository interface {
	Create(ctx context.Context, w *Workflow) error
	GetByWorkflowID(ctx context.Context, workflowID string) (*Workflow, error)
	// List returns workflows filtered by organization and/or category
	// (empty strings mean no filter).
	List(ctx context.Context, orgID, category string) ([]Workflow, error)
}
