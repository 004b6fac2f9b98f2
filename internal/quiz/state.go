// Package quiz holds the rating session state for the values quiz.
package quiz

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a precondition violation such as an out of range index.
var ErrInvalidArgument = errors.New("invalid argument")

// Phase identifies where the session is in its lifecycle.
type Phase int

const (
	// InProgress means at least one item is still unrated.
	InProgress Phase = iota
	// Complete means every item carries a rating.
	Complete
)

// String returns a readable phase name.
func (p Phase) String() string {
	if p == Complete {
		return "complete"
	}
	return "in_progress"
}

// Item is one ratable label.
type Item struct {
	Text   string
	Rating Rating
}

// Rated reports whether the item has been rated.
func (item Item) Rated() bool {
	return item.Rating != Unset
}

// Confirmer asks the host environment for a yes/no decision.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls fn.
func (fn ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return fn(ctx, prompt)
}

// ResetPrompt is the question asked before discarding all ratings.
const ResetPrompt = "Are you sure you want to reset all your ratings?"

// State is the mutable session state. It is not safe for concurrent use;
// a single UI loop owns it.
type State struct {
	labels       []string
	items        []Item
	currentIndex int
	complete     bool
	showResults  bool
}

// New creates a session over labels with every rating unset.
func New(labels []string) (*State, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: at least one label is required", ErrInvalidArgument)
	}
	state := &State{labels: append([]string(nil), labels...)}
	state.Clear()
	return state, nil
}

// Rate assigns rating to the item at index and advances past the current item.
func (s *State) Rate(index int, rating Rating) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, index, len(s.items))
	}
	if !rating.Valid() {
		return fmt.Errorf("%w: rating %s cannot be assigned", ErrInvalidArgument, rating)
	}
	s.items[index].Rating = rating
	if index == s.currentIndex && index < len(s.items)-1 {
		s.currentIndex = index + 1
	}
	s.complete = allRated(s.items)
	return nil
}

// RateCurrent rates the item at the current position.
func (s *State) RateCurrent(rating Rating) error {
	return s.Rate(s.currentIndex, rating)
}

// Reset asks confirm before returning the session to its initial state.
// It reports whether the reset happened; a declined or failed confirmation
// leaves the state untouched.
func (s *State) Reset(ctx context.Context, confirm Confirmer) (bool, error) {
	if confirm == nil {
		return false, fmt.Errorf("%w: confirmer is required", ErrInvalidArgument)
	}
	ok, err := confirm.Confirm(ctx, ResetPrompt)
	if err != nil {
		return false, fmt.Errorf("confirm reset: %w", err)
	}
	if !ok {
		return false, nil
	}
	s.Clear()
	return true, nil
}

// Clear unconditionally returns the session to its initial state.
func (s *State) Clear() {
	items := make([]Item, len(s.labels))
	for i, label := range s.labels {
		items[i] = Item{Text: label}
	}
	s.items = items
	s.currentIndex = 0
	s.complete = false
	s.showResults = false
}

// ToggleResults flips the results preview.
func (s *State) ToggleResults() {
	s.showResults = !s.showResults
}

// ShowResults reports whether the results preview is visible.
func (s *State) ShowResults() bool {
	return s.showResults
}

// IsComplete reports whether every item is rated.
func (s *State) IsComplete() bool {
	return s.complete
}

// Phase returns the lifecycle phase.
func (s *State) Phase() Phase {
	if s.complete {
		return Complete
	}
	return InProgress
}

// CurrentIndex returns the position of the item being rated.
func (s *State) CurrentIndex() int {
	return s.currentIndex
}

// Current returns the item at the current position.
func (s *State) Current() Item {
	return s.items[s.currentIndex]
}

// Len returns the number of items.
func (s *State) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in order.
func (s *State) Items() []Item {
	return append([]Item(nil), s.items...)
}

// RatedCount returns how many items carry a rating.
func (s *State) RatedCount() int {
	count := 0
	for _, item := range s.items {
		if item.Rated() {
			count++
		}
	}
	return count
}

// Progress returns the one-based position and the total item count.
func (s *State) Progress() (position, total int) {
	return s.currentIndex + 1, len(s.items)
}

func allRated(items []Item) bool {
	for _, item := range items {
		if !item.Rated() {
			return false
		}
	}
	return true
}
