package feedback

import (
	"fmt"
	"time"
)

// Category classifies a feedback item. The zero value means "no category":
// seeded records may carry it, form submissions may not.
type Category string

const (
	CategoryNone    Category = ""
	CategoryUX      Category = "UX"
	CategoryUI      Category = "UI"
	CategoryFeature Category = "Feature"
	CategoryOther   Category = "Other"
)

// FormCategories returns the categories a submission may choose from, in
// picker order. CategoryNone is deliberately absent.
func FormCategories() []Category {
	return []Category{CategoryUX, CategoryUI, CategoryFeature, CategoryOther}
}

// ParseCategory maps a category name to its Category. The empty string maps
// to CategoryNone; anything else unknown is an error.
func ParseCategory(name string) (Category, error) {
	switch Category(name) {
	case CategoryNone, CategoryUX, CategoryUI, CategoryFeature, CategoryOther:
		return Category(name), nil
	}
	return CategoryNone, fmt.Errorf("unknown category %q (valid: UX, UI, Feature, Other)", name)
}

// Valid reports whether c is one of the four concrete categories or unset.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// Feedback is a single item on the board.
type Feedback struct {
	ID          int
	Title       string
	Description string
	Category    Category
	Rating      int
	CreatedAt   time.Time
}
