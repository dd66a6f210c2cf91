package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/smileynet/contacts/internal/config"
	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/menu"
	"github.com/smileynet/contacts/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for contacts.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Menu    MenuCmd          `cmd:"" default:"withargs" help:"Open the interactive contact menu."`
}

// MenuCmd runs an interactive contact menu session.
type MenuCmd struct {
	NoTUI         bool `help:"Force the plain text menu even if stdout is a TTY." default:"false"`
	Upsert        bool `help:"Update an existing contact with the same name instead of adding a duplicate." default:"false"`
	ReportMissing bool `help:"Report update and delete requests for names that do not exist." default:"false"`
}

// setupError marks failures that happen before the session starts.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// loadConfig loads .env, then layered config from user and project paths with env overrides.
func loadConfig(stderr io.Writer) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		_, _ = fmt.Fprintf(stderr, "warning: %v\n", err)
	}
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		".contacts/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the menu command.
func (c *MenuCmd) Run() error {
	cfg, err := loadConfig(os.Stderr)
	if err != nil {
		return &setupError{fmt.Errorf("menu: %w", err)}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.run(ctx, cfg, os.Stdin, os.Stdout)
}

// run applies flag overrides and runs the session, enabling testable wiring.
func (c *MenuCmd) run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	// Flags only ever switch behavior on; config and env cover the rest.
	if c.NoTUI {
		cfg.UI.Mode = config.ModePlain
	}
	if c.Upsert {
		cfg.Menu.AddMode = config.AddUpsert
	}
	if c.ReportMissing {
		cfg.Menu.ReportMissing = true
	}

	if err := cfg.Validate(); err != nil {
		return &setupError{fmt.Errorf("menu: %w", err)}
	}

	handler := menu.NewHandler(contact.NewRepository(),
		menu.WithAddMode(menu.AddMode(cfg.Menu.AddMode)),
		menu.WithReportMissing(cfg.Menu.ReportMissing),
	)

	frontend := tui.NewFrontend(tui.FrontendOptions{
		In:      in,
		Out:     out,
		Mode:    tui.Mode(cfg.UI.Mode),
		Handler: handler,
	})

	if err := frontend.Run(ctx); err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitRuntime
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("Manage an in-memory contact list from a text menu."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
