package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/contacts/internal/menu"
)

// Mode selects which frontend NewFrontend returns.
type Mode string

const (
	ModeAuto  Mode = "auto"  // TUI on a terminal, plain otherwise.
	ModeTUI   Mode = "tui"   // Always the TUI.
	ModePlain Mode = "plain" // Always the plain text loop.
)

// Frontend runs an interactive contact menu session.
type Frontend interface {
	Run(ctx context.Context) error
}

// FrontendOptions configures frontend creation.
type FrontendOptions struct {
	In      io.Reader     // Input source (default: os.Stdin).
	Out     io.Writer     // Output destination (default: os.Stdout).
	Mode    Mode          // Frontend selection (default: ModeAuto).
	Handler *menu.Handler // Applies menu choices to the contact store.
}

// NewFrontend returns a TUI frontend when the mode asks for one, or when the
// mode is auto and Out is a TTY. Otherwise it returns the plain text loop.
func NewFrontend(opts FrontendOptions) Frontend {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	switch opts.Mode {
	case ModeTUI:
		return &TUIFrontend{handler: opts.Handler, in: opts.In, out: opts.Out}
	case ModePlain:
		return &PlainFrontend{loop: menu.NewLoop(opts.Handler, opts.In, opts.Out)}
	}
	if isTTY(opts.Out) {
		return &TUIFrontend{handler: opts.Handler, in: opts.In, out: opts.Out}
	}
	return &PlainFrontend{loop: menu.NewLoop(opts.Handler, opts.In, opts.Out)}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainFrontend runs the line-oriented menu loop.
type PlainFrontend struct {
	loop *menu.Loop
}

// Run runs the loop until the user exits or input ends.
func (f *PlainFrontend) Run(ctx context.Context) error {
	return f.loop.Run(ctx)
}

// TUIFrontend runs the menu as a Bubble Tea program.
// Falls back to the plain loop if the program fails to start.
type TUIFrontend struct {
	handler *menu.Handler
	in      io.Reader
	out     io.Writer
}

// Run starts the Bubble Tea program and blocks until it quits or ctx is cancelled.
func (f *TUIFrontend) Run(ctx context.Context) error {
	p := tea.NewProgram(NewModel(f.handler),
		tea.WithInput(f.in),
		tea.WithOutput(f.out),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		// The handler keeps the contact store, so the session carries over.
		return menu.NewLoop(f.handler, f.in, f.out).Run(ctx)
	}
	return nil
}
