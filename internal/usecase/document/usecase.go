package document

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	domain "workflow-platform-backend/internal/domain/document"
	domainSubmission "workflow-platform-backend/internal/domain/submission"
	"workflow-platform-backend/pkg/id"

	"gorm.io/gorm"
)

// Renderer turns a submission snapshot into document bytes. A failing or
// absent renderer surfaces as ErrRendererUnavailable and never touches
// submission state.
type Renderer interface {
	Render(snap domain.Snapshot, title string) ([]byte, error)
}

// ObjectStore persists externally stored artifacts and returns an opaque
// locator for the object.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, payload []byte) (string, error)
}

type Usecase struct {
	subs     domainSubmission.Repository
	docs     domain.Repository
	renderer Renderer
	store    ObjectStore
	// Storage mode for newly generated documents; external requires store.
	storage domain.Storage
}

func NewUsecase(subs domainSubmission.Repository, docs domain.Repository, r Renderer, store ObjectStore, storage domain.Storage) *Usecase {
	if storage != domain.StorageExternal {
		storage = domain.StorageInline
	}
	return &Usecase{subs: subs, docs: docs, renderer: r, store: store, storage: storage}
}

type GenerateInput struct {
	SubmissionID string
	Title        string
}

type ListInput struct {
	SubmissionID string // public id; empty = any
	Archived     *bool
}

func (u *Usecase) Generate(ctx context.Context, in GenerateInput) (*domain.Document, error) {
	if u.renderer == nil {
		return nil, domain.ErrRendererUnavailable
	}
	s, err := u.subs.GetBySubmissionID(ctx, in.SubmissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainSubmission.ErrNotFound
		}
		return nil, err
	}

	data := map[string]any{}
	if len(s.Data) > 0 {
		_ = json.Unmarshal(s.Data, &data)
	}
	title := in.Title
	if title == "" {
		title = "Submission Summary"
	}
	payload, err := u.renderer.Render(domain.Snapshot{
		SubmissionID: s.SubmissionID,
		Status:       string(s.Status),
		Data:         data,
	}, title)
	if err != nil {
		log.Printf("document: render failed for submission %s: %v", s.SubmissionID, err)
		return nil, domain.ErrRendererUnavailable
	}

	d := &domain.Document{
		DocumentID:   id.NewID32(),
		SubmissionID: s.ID, // numeric FK
		Title:        title,
		ContentType:  "application/pdf",
		Storage:      u.storage,
	}
	if u.storage == domain.StorageExternal {
		if u.store == nil {
			return nil, domain.ErrStorageUnavailable
		}
		key := fmt.Sprintf("documents/%s.pdf", d.DocumentID)
		url, err := u.store.Put(ctx, key, d.ContentType, payload)
		if err != nil {
			log.Printf("document: upload failed for submission %s: %v", s.SubmissionID, err)
			return nil, domain.ErrStorageUnavailable
		}
		d.ExternalURL = url
	} else {
		d.DataBase64 = base64.StdEncoding.EncodeToString(payload)
	}

	if err := u.docs.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (u *Usecase) Archive(ctx context.Context, documentID string) (*domain.Document, error) {
	d, err := u.docs.GetByDocumentID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !d.Archived {
		d.Archived = true
		if err := u.docs.Save(ctx, d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) ([]domain.Document, error) {
	f := domain.ListFilter{Archived: in.Archived}
	if in.SubmissionID != "" {
		s, err := u.subs.GetBySubmissionID(ctx, in.SubmissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domainSubmission.ErrNotFound
			}
			return nil, err
		}
		f.SubmissionID = s.ID
	}
	return u.docs.List(ctx, f)
}
