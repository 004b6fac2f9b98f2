package cli

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a stream is a TTY.
var isTerminal = func(stream any) bool {
	fder, ok := stream.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fder.Fd()))
}

// resolveUIMode picks the renderer for mode. The live UI reads raw key
// presses and redraws the screen, so it needs a TTY on stdin and stdout.
func resolveUIMode(mode string, stdin, stdout any) (uiModeDecision, error) {
	interactive := isTerminal(stdin) && isTerminal(stdout)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return uiModeDecision{useLive: interactive}, nil
	case "plain":
		return uiModeDecision{}, nil
	case "live":
		if !interactive {
			return uiModeDecision{warning: "Live UI requested but stdin/stdout is not a TTY; falling back to plain prompts."}, nil
		}
		return uiModeDecision{useLive: true}, nil
	}
	return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
}
