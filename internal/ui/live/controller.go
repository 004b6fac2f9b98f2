package live

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"valuesquiz/internal/session"
)

// Run drives the session in a Bubble Tea program until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, opts Options) error {
	model := NewModel(ctx, sess, opts)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)
	_, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
