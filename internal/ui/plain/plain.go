// Package plain renders the quiz as line-oriented prompts for terminals
// without full-screen support and for piped input.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"valuesquiz/internal/quiz"
	"valuesquiz/internal/report"
	"valuesquiz/internal/session"
)

// Run prompts for ratings on out and reads commands from in until the user
// quits, input ends, or ctx is cancelled. Cancellation is honored while a
// read is pending.
func Run(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) error {
	lines := newLineReader(in)
	defer lines.stop()
	confirm := &promptConfirmer{lines: lines, out: out}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		render(out, sess)
		line, ok, err := lines.next(ctx)
		if err != nil || !ok {
			return err
		}
		quit, err := apply(ctx, sess, confirm, out, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// apply executes one command line.
func apply(ctx context.Context, sess *session.Session, confirm quiz.Confirmer, out io.Writer, line string) (bool, error) {
	state := sess.State()
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "r", "reset", "start over":
		done, err := sess.Reset(ctx, confirm)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, err
		}
		if done {
			fmt.Fprintln(out, "Ratings reset.")
		} else {
			fmt.Fprintln(out, "Reset cancelled.")
		}
		return false, nil
	case "s", "results":
		if !state.IsComplete() {
			sess.ToggleResults()
		}
		return false, nil
	case "?", "h", "help":
		printHelp(out)
		return false, nil
	}
	if state.IsComplete() {
		fmt.Fprintln(out, "All values are rated. Enter r to start over or q to quit.")
		return false, nil
	}
	rating, err := quiz.ParseRating(command)
	if err != nil {
		fmt.Fprintf(out, "Unknown command %q. Enter ? for help.\n", line)
		return false, nil
	}
	if err := sess.RateCurrent(rating); err != nil {
		return false, err
	}
	return false, nil
}

// render writes the screen for the current phase.
func render(out io.Writer, sess *session.Session) {
	state := sess.State()
	fmt.Fprintln(out)
	if state.IsComplete() {
		fmt.Fprint(out, report.Text(report.FromState(sess.ID, state)))
		fmt.Fprintln(out, "\n[r] Start Over  [q] Quit")
		fmt.Fprint(out, "> ")
		return
	}
	position, total := state.Progress()
	fmt.Fprintln(out, "Rate Your Values")
	fmt.Fprintf(out, "Progress: %d / %d\n\n", position, total)
	current := state.Current()
	fmt.Fprintf(out, "  %s\n\n", current.Text)
	controls := make([]string, 0, len(quiz.Ratings))
	for i, rating := range quiz.Ratings {
		mark := " "
		if current.Rating == rating {
			mark = "x"
		}
		controls = append(controls, fmt.Sprintf("[%s] %d %s", mark, i+1, rating.Label()))
	}
	fmt.Fprintln(out, "  "+strings.Join(controls, "   "))
	toggle := "Show Current Results"
	if state.ShowResults() {
		toggle = "Hide Current Results"
	}
	fmt.Fprintf(out, "\n[s] %s  [r] Reset  [q] Quit\n", toggle)
	if state.ShowResults() {
		fmt.Fprintln(out)
		fmt.Fprint(out, report.Text(report.FromState(sess.ID, state)))
	}
	fmt.Fprint(out, "> ")
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  1, i, important       rate as important to me")
	fmt.Fprintln(out, "  2, n, neutral         rate as neutral")
	fmt.Fprintln(out, "  3, l, less            rate as less important")
	fmt.Fprintln(out, "  s, results            show or hide current results")
	fmt.Fprintln(out, "  r, reset              start over (asks first)")
	fmt.Fprintln(out, "  q, quit               end the session")
}

// lineReader scans input on its own goroutine so a pending read can be
// abandoned when the context ends. A read blocked in the underlying reader
// finishes only when that reader returns.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineReader(in io.Reader) *lineReader {
	r := &lineReader{lines: make(chan string), done: make(chan struct{})}
	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case r.lines <- scanner.Text():
			case <-r.done:
				return
			}
		}
		r.err = scanner.Err()
	}()
	return r
}

// next returns the next input line. ok is false at end of input.
func (r *lineReader) next(ctx context.Context) (line string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case text, open := <-r.lines:
		if !open {
			return "", false, r.err
		}
		return text, true, nil
	}
}

// stop releases the scanning goroutine once it next delivers a line.
func (r *lineReader) stop() {
	close(r.done)
}

// promptConfirmer asks a yes/no question on the same line stream.
type promptConfirmer struct {
	lines *lineReader
	out   io.Writer
}

// Confirm prints prompt and accepts y or yes. Anything else declines.
func (c *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, ok, err := c.lines.next(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, io.EOF
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
