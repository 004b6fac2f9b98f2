package quiz

import (
	"fmt"
	"strings"
)

// Rating is the value a user assigns to an item.
type Rating int

const (
	// Unset marks an item that has not been rated yet.
	Unset Rating = iota
	// Important marks a value that matters to the user.
	Important
	// Neutral marks a value the user feels neutral about.
	Neutral
	// LessImportant marks a value that matters less to the user.
	LessImportant
)

// Ratings lists the assignable ratings in display order.
var Ratings = []Rating{Important, Neutral, LessImportant}

// Valid reports whether the rating can be assigned to an item.
func (r Rating) Valid() bool {
	switch r {
	case Important, Neutral, LessImportant:
		return true
	default:
		return false
	}
}

// String returns the stable identifier for the rating.
func (r Rating) String() string {
	switch r {
	case Unset:
		return "unset"
	case Important:
		return "important"
	case Neutral:
		return "neutral"
	case LessImportant:
		return "less_important"
	default:
		return fmt.Sprintf("rating(%d)", int(r))
	}
}

// Label returns the control label shown next to a rating.
func (r Rating) Label() string {
	switch r {
	case Important:
		return "Important to me"
	case Neutral:
		return "Neutral"
	case LessImportant:
		return "Less important"
	default:
		return ""
	}
}

// GroupTitle returns the heading used for the rating's result group.
func (r Rating) GroupTitle() string {
	switch r {
	case Important:
		return "Strong Values"
	case Neutral:
		return "Neutral Values"
	case LessImportant:
		return "Less Important Values"
	default:
		return ""
	}
}

// ParseRating maps a user supplied name to a rating.
func ParseRating(value string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "important", "up", "i", "1":
		return Important, nil
	case "neutral", "n", "2":
		return Neutral, nil
	case "less_important", "less", "down", "l", "3":
		return LessImportant, nil
	default:
		return Unset, fmt.Errorf("%w: unknown rating %q", ErrInvalidArgument, value)
	}
}
