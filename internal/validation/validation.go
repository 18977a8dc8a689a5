// Package validation declares the admissible request shapes for the portfolio
// API and checks incoming payloads against them. Validators accumulate every
// violation rather than stopping at the first, and report them in a
// deterministic field order so the same bad payload always produces the same
// diagnostic list.
package validation

// FieldError is a single field-level diagnostic.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorList struct {
	errs []FieldError
}

func (l *errorList) add(field, message string) {
	l.errs = append(l.errs, FieldError{Field: field, Message: message})
}
