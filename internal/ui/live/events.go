package live

import "valuesquiz/internal/quiz"

// ActionKind identifies a user intent decoded from input.
type ActionKind int

const (
	// ActionNone is ignored.
	ActionNone ActionKind = iota
	// ActionRate rates the current item with Action.Rating.
	ActionRate
	// ActionSelect rates the current item with the focused control.
	ActionSelect
	// ActionFocusNext moves the cursor to the next control.
	ActionFocusNext
	// ActionFocusPrev moves the cursor to the previous control.
	ActionFocusPrev
	// ActionToggleResults shows or hides the current results.
	ActionToggleResults
	// ActionRequestReset opens the reset confirmation.
	ActionRequestReset
	// ActionConfirmReset answers yes to the reset confirmation.
	ActionConfirmReset
	// ActionCancelReset answers no to the reset confirmation.
	ActionCancelReset
	// ActionQuit ends the session.
	ActionQuit
)

// Action carries a decoded user intent.
type Action struct {
	Kind   ActionKind
	Rating quiz.Rating
}
