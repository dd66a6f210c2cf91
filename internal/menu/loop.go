package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Loop drives a Handler over line-oriented text streams, prompting for a menu
// choice and its fields until the user exits or input ends.
type Loop struct {
	handler *Handler
	in      io.Reader
	out     io.Writer
}

// NewLoop creates a Loop reading lines from in and writing to out.
func NewLoop(h *Handler, in io.Reader, out io.Writer) *Loop {
	return &Loop{handler: h, in: in, out: out}
}

// lineResult is one line read from input, or the error that ended reading.
type lineResult struct {
	text string
	err  error
}

// Run shows the menu until the exit choice, end of input, or ctx cancellation,
// then prints the farewell. Only read errors other than EOF are returned.
//
// Input is read on a separate goroutine. When ctx is cancelled during a blocked
// read, Run returns at once but that goroutine stays in Read until the reader
// returns, so a reader that never unblocks (stdin) keeps it alive until exit.
func (l *Loop) Run(ctx context.Context) error {
	lines := make(chan lineResult)
	stop := make(chan struct{})
	defer close(stop)
	go l.scan(lines, stop)

	err := l.run(ctx, lines)
	l.printf("\n%s\n", Goodbye)
	return err
}

// scan reads lines from input on its own goroutine so that Run can observe
// cancellation while a read is blocked. Lines have no length limit; a final
// line without a newline is still delivered.
func (l *Loop) scan(lines chan<- lineResult, stop <-chan struct{}) {
	r := bufio.NewReader(l.in)
	for {
		line, err := r.ReadString('\n')
		if err == nil || (errors.Is(err, io.EOF) && line != "") {
			select {
			case lines <- lineResult{text: trimNewline(line)}:
			case <-stop:
				return
			}
		}
		if err != nil {
			select {
			case lines <- lineResult{err: err}:
			case <-stop:
			}
			return
		}
	}
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func (l *Loop) run(ctx context.Context, lines <-chan lineResult) error {
	for {
		l.printMenu()
		text, err := readLine(ctx, lines)
		if err != nil {
			return endOfInput(err)
		}

		choice, ok := ParseChoice(text)
		if !ok {
			l.printf("%s\n", InvalidChoice)
			continue
		}
		if choice == ChoiceExit {
			return nil
		}

		prompts := Prompts(choice)
		answers := make([]string, 0, len(prompts))
		for _, p := range prompts {
			l.printf("%s", p)
			a, err := readLine(ctx, lines)
			if err != nil {
				return endOfInput(err)
			}
			answers = append(answers, a)
		}

		for _, line := range l.handler.Handle(choice, answers) {
			l.printf("%s\n", line)
		}
	}
}

func (l *Loop) printMenu() {
	l.printf("\n%s\n\n", Title)
	for _, it := range Items {
		l.printf("%s. %s\n", it.Choice, it.Label)
	}
	l.printf("\n%s", ChoicePrompt)
}

func (l *Loop) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}

func readLine(ctx context.Context, lines <-chan lineResult) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-lines:
		return r.text, r.err
	}
}

// endOfInput treats EOF and cancellation as a normal end of the session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("menu: reading input: %w", err)
}
