//go:build cucumber
// +build cucumber

package quiz

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestRatingScenarios runs the rating feature scenarios.
func TestRatingScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "quiz", "rating.feature")
	suite := godog.TestSuite{
		Name:                "quiz-rating",
		ScenarioInitializer: InitializeRatingScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeRatingScenario wires steps for rating scenarios.
func InitializeRatingScenario(ctx *godog.ScenarioContext) {
	scenario := &ratingScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		scenario.reset()
		return ctx, nil
	})

	ctx.Step(`^a quiz with values "([^"]*)"$`, scenario.givenQuiz)
	ctx.Step(`^I rate item (\d+) as "([^"]*)"$`, scenario.whenRate)
	ctx.Step(`^I show the current results$`, scenario.whenToggle)
	ctx.Step(`^I reset and answer "(yes|no)"$`, scenario.whenReset)
	ctx.Step(`^the current position is (\d+) of (\d+)$`, scenario.thenPosition)
	ctx.Step(`^the quiz is in progress$`, scenario.thenInProgress)
	ctx.Step(`^the quiz is complete$`, scenario.thenComplete)
	ctx.Step(`^the "([^"]*)" group lists "([^"]*)"$`, scenario.thenGroupLists)
	ctx.Step(`^the rating is rejected as an invalid argument$`, scenario.thenRejected)
	ctx.Step(`^(\d+) values? (?:is|are) rated$`, scenario.thenRatedCount)
	ctx.Step(`^the current results are (shown|hidden)$`, scenario.thenResults)
}

type ratingScenarioState struct {
	state   *State
	lastErr error
}

// reset clears scenario state.
func (s *ratingScenarioState) reset() {
	s.state = nil
	s.lastErr = nil
}

// givenQuiz creates a quiz over a comma separated label list.
func (s *ratingScenarioState) givenQuiz(list string) error {
	var labels []string
	for _, label := range strings.Split(list, ",") {
		labels = append(labels, strings.TrimSpace(label))
	}
	state, err := New(labels)
	if err != nil {
		return err
	}
	s.state = state
	return nil
}

// whenRate rates a one-based item.
func (s *ratingScenarioState) whenRate(position int, name string) error {
	rating, err := ParseRating(strings.ReplaceAll(name, " ", "_"))
	if err != nil {
		return err
	}
	s.lastErr = s.state.Rate(position-1, rating)
	return nil
}

// whenToggle shows the results preview.
func (s *ratingScenarioState) whenToggle() error {
	if !s.state.ShowResults() {
		s.state.ToggleResults()
	}
	return nil
}

// whenReset answers the reset confirmation.
func (s *ratingScenarioState) whenReset(answer string) error {
	_, err := s.state.Reset(context.Background(), ConfirmFunc(func(context.Context, string) (bool, error) {
		return answer == "yes", nil
	}))
	return err
}

// thenPosition asserts the one-based progress.
func (s *ratingScenarioState) thenPosition(position, total int) error {
	gotPosition, gotTotal := s.state.Progress()
	if gotPosition != position || gotTotal != total {
		return fmt.Errorf("expected position %d of %d, got %d of %d", position, total, gotPosition, gotTotal)
	}
	return nil
}

// thenInProgress asserts the quiz is not complete.
func (s *ratingScenarioState) thenInProgress() error {
	if s.state.Phase() != InProgress {
		return fmt.Errorf("expected in progress, got %s", s.state.Phase())
	}
	return nil
}

// thenComplete asserts every item is rated.
func (s *ratingScenarioState) thenComplete() error {
	if s.state.Phase() != Complete {
		return fmt.Errorf("expected complete, got %s", s.state.Phase())
	}
	return nil
}

// thenGroupLists asserts a result group's labels.
func (s *ratingScenarioState) thenGroupLists(title, list string) error {
	groups := s.state.Categorize()
	for _, rating := range Ratings {
		if rating.GroupTitle() != title {
			continue
		}
		got := strings.Join(groups.For(rating), ", ")
		if got != list {
			return fmt.Errorf("expected %s to list %q, got %q", title, list, got)
		}
		return nil
	}
	return fmt.Errorf("unknown group %q", title)
}

// thenRejected asserts the last rating failed its precondition.
func (s *ratingScenarioState) thenRejected() error {
	if !errors.Is(s.lastErr, ErrInvalidArgument) {
		return fmt.Errorf("expected invalid argument, got %v", s.lastErr)
	}
	return nil
}

// thenRatedCount asserts the number of rated items.
func (s *ratingScenarioState) thenRatedCount(count int) error {
	if got := s.state.RatedCount(); got != count {
		return fmt.Errorf("expected %d rated, got %d", count, got)
	}
	return nil
}

// thenResults asserts the preview visibility.
func (s *ratingScenarioState) thenResults(visibility string) error {
	if got := s.state.ShowResults(); got != (visibility == "shown") {
		return fmt.Errorf("expected results %s", visibility)
	}
	return nil
}
