package live

import "valuesquiz/internal/quiz"

// View holds presentation state that is not part of the quiz itself.
type View struct {
	// Focus is the rating control the cursor sits on.
	Focus      quiz.Rating
	Confirming bool
	LastEvent  string
	Quitting   bool
}

// NewView returns the initial presentation state.
func NewView() View {
	return View{Focus: quiz.Important}
}
