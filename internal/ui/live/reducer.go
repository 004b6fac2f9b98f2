package live

import (
	"context"
	"fmt"

	"valuesquiz/internal/quiz"
	"valuesquiz/internal/session"
)

// Reduce applies an action to the session and returns the next view state.
// While a reset confirmation is open only the answer or quit is accepted.
func Reduce(ctx context.Context, view View, sess *session.Session, action Action) View {
	state := sess.State()
	if view.Confirming {
		switch action.Kind {
		case ActionConfirmReset:
			return answerReset(ctx, view, sess, true)
		case ActionCancelReset:
			return answerReset(ctx, view, sess, false)
		case ActionQuit:
			view.Quitting = true
		}
		return view
	}

	switch action.Kind {
	case ActionRate:
		return rateCurrent(view, sess, action.Rating)
	case ActionSelect:
		return rateCurrent(view, sess, view.Focus)
	case ActionFocusNext:
		view.Focus = shiftFocus(view.Focus, 1)
	case ActionFocusPrev:
		view.Focus = shiftFocus(view.Focus, -1)
	case ActionToggleResults:
		if state.IsComplete() {
			return view
		}
		sess.ToggleResults()
		if state.ShowResults() {
			view.LastEvent = "Showing current results"
		} else {
			view.LastEvent = "Hiding current results"
		}
	case ActionRequestReset:
		view.Confirming = true
	case ActionQuit:
		view.Quitting = true
	}
	return view
}

// rateCurrent rates the current item unless the quiz is already complete.
func rateCurrent(view View, sess *session.Session, rating quiz.Rating) View {
	state := sess.State()
	if state.IsComplete() {
		return view
	}
	index := state.CurrentIndex()
	label := state.Current().Text
	if err := sess.Rate(index, rating); err != nil {
		view.LastEvent = err.Error()
		return view
	}
	view.Focus = quiz.Important
	if state.IsComplete() {
		view.LastEvent = "All values rated"
		return view
	}
	view.LastEvent = fmt.Sprintf("%s: %s", label, rating.Label())
	return view
}

// answerReset resolves an open confirmation with the user's answer.
func answerReset(ctx context.Context, view View, sess *session.Session, yes bool) View {
	view.Confirming = false
	done, err := sess.Reset(ctx, quiz.ConfirmFunc(func(context.Context, string) (bool, error) {
		return yes, nil
	}))
	switch {
	case err != nil:
		view.LastEvent = err.Error()
	case done:
		view = NewView()
		view.LastEvent = "Ratings reset"
	default:
		view.LastEvent = "Reset cancelled"
	}
	return view
}

// shiftFocus cycles the cursor over the assignable ratings.
func shiftFocus(focus quiz.Rating, step int) quiz.Rating {
	position := 0
	for i, rating := range quiz.Ratings {
		if rating == focus {
			position = i
		}
	}
	count := len(quiz.Ratings)
	return quiz.Ratings[((position+step)%count+count)%count]
}
