package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormFields_Set(t *testing.T) {
	var f FormFields

	assert.True(t, f.Set(FieldName, "Alice"))
	assert.True(t, f.Set(FieldContact, "alice@x.com"))
	assert.True(t, f.Set(FieldDescription, "Build an app"))
	assert.True(t, f.Set(FieldBudget, "discuss"))
	assert.False(t, f.Set(Field("phone"), "123"))

	assert.Equal(t, FormFields{
		Name:        "Alice",
		Contact:     "alice@x.com",
		Description: "Build an app",
		Budget:      "discuss",
	}, f)
}

func TestFormFields_Blank(t *testing.T) {
	tests := []struct {
		name     string
		fields   FormFields
		expected []Field
	}{
		{"all filled", FormFields{Name: "a", Contact: "b", Description: "c"}, nil},
		{"all empty", FormFields{}, []Field{FieldName, FieldContact, FieldDescription}},
		{"whitespace name", FormFields{Name: "  \t", Contact: "b", Description: "c"}, []Field{FieldName}},
		{"budget is optional", FormFields{Name: "a", Contact: "b", Description: "c", Budget: ""}, nil},
		{"newline description", FormFields{Name: "a", Contact: "b", Description: "\n"}, []Field{FieldDescription}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fields.Blank())
		})
	}
}

func TestSubmissionRequest_Trimmed(t *testing.T) {
	req := SubmissionRequest{Name: " Alice ", Contact: "\talice@x.com", Description: "app\n", Budget: " discuss"}
	assert.Equal(t, SubmissionRequest{Name: "Alice", Contact: "alice@x.com", Description: "app", Budget: "discuss"}, req.Trimmed())
}
