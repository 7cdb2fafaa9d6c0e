package form

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("form not found")

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldCurrency FieldType = "currency"
	FieldTextarea FieldType = "textarea"
	FieldFile     FieldType = "file"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldNumber, FieldDate, FieldSelect, FieldCurrency, FieldTextarea, FieldFile:
		return true
	}
	return false
}

// Field is one entry of a form's input schema. Key is unique within a form.
type Field struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

type Form struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	FormID      string    `gorm:"column:form_id;type:char(32);not null;uniqueIndex:ux_forms_form_id" json:"form_id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Fields      []Field   `gorm:"column:fields;type:json;serializer:json" json:"fields"`
	OrgID       string    `gorm:"column:org_id;type:char(32);index:idx_forms_org" json:"org_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Form) TableName() string { return "forms" }

// FieldByKey returns the schema field with the given key, if present.
func (f *Form) FieldByKey(key string) (Field, bool) {
	for _, fl := range f.Fields {
		if fl.Key == key {
			return fl, true
		}
	}
	return Field{}, false
}
