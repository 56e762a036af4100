package search_test

import (
	"reflect"
	"testing"

	"hotelier/shared/search"
)

type person struct {
	Name  string
	Email string
	Role  string
}

var people = []person{
	{Name: "Alice Smith", Email: "alice@example.com", Role: "manager"},
	{Name: "Bob Jones", Email: "bob@example.com", Role: "receptionist"},
	{Name: "Carol Smith", Email: "carol@other.org", Role: "housekeeper"},
}

func personFields(p person) []string {
	return []string{p.Name, p.Email}
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "empty query matches everything",
			query:    "",
			expected: []string{"Alice Smith", "Bob Jones", "Carol Smith"},
		},
		{
			name:     "whitespace query matches everything",
			query:    "   ",
			expected: []string{"Alice Smith", "Bob Jones", "Carol Smith"},
		},
		{
			name:     "case insensitive substring",
			query:    "SMITH",
			expected: []string{"Alice Smith", "Carol Smith"},
		},
		{
			name:     "matches any configured field",
			query:    "other.org",
			expected: []string{"Carol Smith"},
		},
		{
			name:     "no match",
			query:    "zzz",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := search.Apply(people, search.Text(tt.query, personFields))

			names := make([]string, 0, len(result))
			for _, p := range result {
				names = append(names, p.Name)
			}

			if !reflect.DeepEqual(names, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, names)
			}
		})
	}
}

func TestTerm(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		expected int
	}{
		{
			name:     "empty selection disables the constraint",
			selected: "",
			expected: 3,
		},
		{
			name:     "all sentinel disables the constraint",
			selected: "all",
			expected: 3,
		},
		{
			name:     "exact match",
			selected: "manager",
			expected: 1,
		},
		{
			name:     "no partial matching",
			selected: "manage",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := search.Apply(people, search.Term(tt.selected, func(p person) string { return p.Role }))

			if len(result) != tt.expected {
				t.Errorf("expected %d items, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("predicates combine with AND", func(t *testing.T) {
		result := search.Apply(people,
			search.Text("smith", personFields),
			search.Term("manager", func(p person) string { return p.Role }),
		)

		if len(result) != 1 || result[0].Name != "Alice Smith" {
			t.Errorf("expected only Alice Smith, got %v", result)
		}
	})

	t.Run("input order is preserved", func(t *testing.T) {
		result := search.Apply(people, search.Text("example.com", personFields))

		expected := []string{"Alice Smith", "Bob Jones"}
		for i, p := range result {
			if p.Name != expected[i] {
				t.Errorf("expected %s at position %d, got %s", expected[i], i, p.Name)
			}
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		original := make([]person, len(people))
		copy(original, people)

		search.Apply(people, search.Text("smith", personFields))

		if !reflect.DeepEqual(people, original) {
			t.Error("expected input slice to be unchanged")
		}
	})

	t.Run("no predicates keeps everything", func(t *testing.T) {
		result := search.Apply(people)

		if len(result) != len(people) {
			t.Errorf("expected %d items, got %d", len(people), len(result))
		}
	})

	t.Run("filtering twice gives the same result", func(t *testing.T) {
		predicate := search.Text("smith", personFields)

		once := search.Apply(people, predicate)
		twice := search.Apply(once, predicate)

		if !reflect.DeepEqual(once, twice) {
			t.Errorf("expected %v, got %v", once, twice)
		}
	})
}
