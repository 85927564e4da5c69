package feedback

import (
	"github.com/go-playground/validator/v10"
)

// Input is what the add-feedback form submits. The tags mirror the product
// rules; Category's zero value fails "required", so a submission without a
// category never reaches the board even though the type permits unset.
type Input struct {
	Title       string   `validate:"min=3"`
	Description string   `validate:"min=10"`
	Category    Category `validate:"required,oneof=UX UI Feature Other"`
	Rating      int      `validate:"min=1,max=5"`
}

var validate = validator.New()

// FieldError is a user-facing validation failure for one field.
type FieldError struct {
	Field   string
	Message string
}

// Validate checks every field independently and returns one error per
// failing field, in struct order. An empty result means the input is
// submittable.
func Validate(in Input) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{Field: e.Field(), Message: messageFor(e)})
	}
	return out
}

func messageFor(e validator.FieldError) string {
	switch e.Field() {
	case "Title":
		return "Title must be at least 3 characters long"
	case "Description":
		return "Description must be at least 10 characters long"
	case "Category":
		return "Category is required"
	case "Rating":
		return "Rating must be between 1 and 5"
	}
	return e.Field() + " is invalid"
}
