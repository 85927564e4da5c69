package feedback

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		err   bool
	}{
		{"UX", CategoryUX, false},
		{"UI", CategoryUI, false},
		{"Feature", CategoryFeature, false},
		{"Other", CategoryOther, false},
		{"", CategoryNone, false},
		{"ux", CategoryNone, true}, // names are case-sensitive
		{"Bug", CategoryNone, true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormCategoriesExcludeUnset(t *testing.T) {
	cats := FormCategories()
	if len(cats) != 4 {
		t.Fatalf("expected 4 form categories, got %d", len(cats))
	}
	for _, c := range cats {
		if c == CategoryNone {
			t.Error("unset must not be offered by the form picker")
		}
		if !c.Valid() {
			t.Errorf("form category %q should be valid", c)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryNone.Valid() {
		t.Error("unset is a valid display category")
	}
	if Category("Bug").Valid() {
		t.Error("unknown names are invalid")
	}
}
