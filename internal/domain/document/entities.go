package document

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("document not found")
	// ErrRendererUnavailable signals the downstream generator is down. It
	// never affects the referenced submission's state.
	ErrRendererUnavailable = errors.New("document renderer unavailable")
	ErrStorageUnavailable  = errors.New("document storage unavailable")
)

type Storage string

const (
	StorageInline   Storage = "inline"
	StorageExternal Storage = "external"
)

// Document is an archival artifact rendered from a submission snapshot.
// Its lifecycle is independent of the submission's.
type Document struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	DocumentID string `gorm:"column:document_id;type:char(32);not null;uniqueIndex:ux_documents_document_id" json:"document_id"`
	// FK to submissions.id (numeric)
	SubmissionID uint64  `gorm:"column:submission_id;not null;index:idx_documents_submission" json:"-"`
	Title        string  `gorm:"column:title;size:255;not null" json:"title"`
	ContentType  string  `gorm:"column:content_type;size:128;not null" json:"content_type"`
	Storage      Storage `gorm:"column:storage;type:enum('inline','external');default:'inline'" json:"storage"`
	// Base64 payload when Storage is inline
	DataBase64 string `gorm:"column:data_base64;type:longtext" json:"data_base64,omitempty"`
	// Object locator when Storage is external
	ExternalURL string    `gorm:"column:external_url;type:text" json:"external_url,omitempty"`
	Archived    bool      `gorm:"column:archived;not null;default:false" json:"archived"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }
