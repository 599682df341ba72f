package model

import "strings"

// Field identifies one member of FormFields.
type Field string

const (
	FieldName        Field = "name"
	FieldContact     Field = "contact"
	FieldDescription Field = "description"
	FieldBudget      Field = "budget"
)

// RequiredFields lists the fields that must be non-blank before submitting.
var RequiredFields = []Field{FieldName, FieldContact, FieldDescription}

// FormFields is the draft a visitor types into an idea form.
type FormFields struct {
	Name        string
	Contact     string
	Description string
	Budget      string // budget token, empty means unspecified
}

// Set overwrites one field. Returns false for an unknown field.
func (f *FormFields) Set(field Field, value string) bool {
	switch field {
	case FieldName:
		f.Name = value
	case FieldContact:
		f.Contact = value
	case FieldDescription:
		f.Description = value
	case FieldBudget:
		f.Budget = value
	default:
		return false
	}
	return true
}

// Get returns the value of one field.
func (f FormFields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldContact:
		return f.Contact
	case FieldDescription:
		return f.Description
	case FieldBudget:
		return f.Budget
	}
	return ""
}

// Blank returns the required fields that are empty after trimming whitespace.
func (f FormFields) Blank() []Field {
	var blank []Field
	for _, field := range RequiredFields {
		if strings.TrimSpace(f.Get(field)) == "" {
			blank = append(blank, field)
		}
	}
	return blank
}

// IsEmpty reports whether every field is empty.
func (f FormFields) IsEmpty() bool {
	return f == FormFields{}
}

// Request snapshots the draft into a wire request.
func (f FormFields) Request() SubmissionRequest {
	return SubmissionRequest{
		Name:        f.Name,
		Contact:     f.Contact,
		Description: f.Description,
		Budget:      f.Budget,
	}
}

// SubmissionRequest is the JSON body of POST /api/submit-idea.
type SubmissionRequest struct {
	Name        string `json:"name" example:"Alice"`
	Contact     string `json:"contact" example:"alice@example.com"`
	Description string `json:"description" example:"A booking app for a barbershop"`
	Budget      string `json:"budget" example:"50000-200000"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (r SubmissionRequest) Trimmed() SubmissionRequest {
	return SubmissionRequest{
		Name:        strings.TrimSpace(r.Name),
		Contact:     strings.TrimSpace(r.Contact),
		Description: strings.TrimSpace(r.Description),
		Budget:      strings.TrimSpace(r.Budget),
	}
}

// SubmissionResponse is the JSON body answered by the endpoint.
type SubmissionResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ThankYou string `json:"thankYou,omitempty"`
}
