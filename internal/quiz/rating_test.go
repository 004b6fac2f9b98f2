package quiz

import (
	"errors"
	"testing"
)

// TestParseRating verifies accepted rating spellings.
func TestParseRating(t *testing.T) {
	cases := map[string]Rating{
		"important":      Important,
		" Up ":           Important,
		"1":              Important,
		"neutral":        Neutral,
		"n":              Neutral,
		"less_important": LessImportant,
		"down":           LessImportant,
		"3":              LessImportant,
	}
	for input, want := range cases {
		got, err := ParseRating(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", input, want, got)
		}
	}
	if _, err := ParseRating("maybe"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

// TestRatingLabels verifies display text for each assignable rating.
func TestRatingLabels(t *testing.T) {
	for _, rating := range Ratings {
		if rating.Label() == "" || rating.GroupTitle() == "" {
			t.Fatalf("missing labels for %s", rating)
		}
	}
	if Unset.Label() != "" || Unset.Valid() {
		t.Fatalf("unset should have no label and be invalid")
	}
}
