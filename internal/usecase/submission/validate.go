package submission

import (
	"encoding/json"
	"fmt"
	"time"

	domainForm "workflow-platform-backend/internal/domain/form"
	domain "workflow-platform-backend/internal/domain/submission"
)

// validateData checks a payload against the form's field definitions:
// required keys present, values typed per field, select values among the
// declared options, no keys outside the schema. Returns a
// *domain.ValidationError naming every offending key, or nil.
func validateData(f *domainForm.Form, data map[string]any) error {
	bad := map[string]string{}

	for _, fl := range f.Fields {
		v, ok := data[fl.Key]
		if !ok || v == nil {
			if fl.Required {
				bad[fl.Key] = "is required"
			}
			continue
		}
		if msg := checkValue(fl, v); msg != "" {
			bad[fl.Key] = msg
		}
	}
	for k := range data {
		if _, ok := f.FieldByKey(k); !ok {
			bad[k] = "is not defined by the form"
		}
	}

	if len(bad) > 0 {
		return &domain.ValidationError{Fields: bad}
	}
	return nil
}

func checkValue(fl domainForm.Field, v any) string {
	switch fl.Type {
	case domainForm.FieldNumber, domainForm.FieldCurrency:
		if !isNumeric(v) {
			return "must be a number"
		}
	case domainForm.FieldDate:
		s, ok := v.(string)
		if !ok {
			return "must be a date string (YYYY-MM-DD)"
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "must be a valid date (YYYY-MM-DD)"
		}
	case domainForm.FieldSelect:
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		for _, opt := range fl.Options {
			if s == opt {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %v", fl.Options)
	default: // text, textarea, file
		if _, ok := v.(string); !ok {
			return "must be a string"
		}
	}
	return ""
}

func isNumeric(v any) bool {
	switch n := v.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	}
	return false
}
