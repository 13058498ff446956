package main

import (
	"errors"
	"fmt"
	"os"

	"go-contact-form/internal/contactform"
	"go-contact-form/internal/delivery/tui"
	"go-contact-form/pkg/logger"
	"go-contact-form/pkg/validation"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var version = "dev"

var errNoTTY = errors.New("contactform-tui: requires a terminal (TTY), use --force to run anyway")

// CLI is the command line of the terminal contact form.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version." short:"V"`
	Plain    bool             `help:"Render inline instead of on the alternate screen."`
	Force    bool             `help:"Start even when stdout is not a terminal."`
	LogFile  string           `help:"Write logs to this file." env:"LOG_FILE"`
	LogLevel string           `help:"Log level." default:"info" env:"LOG_LEVEL" enum:"debug,info,warn,error"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the form and launches the TUI.
func (c *CLI) Run() error {
	closer := logger.Init(logger.Options{Level: c.LogLevel, File: c.LogFile, FileOnly: true})
	defer closer.Close()

	engine, err := validation.New()
	if err != nil {
		return fmt.Errorf("contactform-tui: %w", err)
	}
	m := tui.NewModel(contactform.NewForm(contactform.NewValidator(engine)))

	var opts []tea.ProgramOption
	if !c.Plain {
		opts = append(opts, tea.WithAltScreen())
	}
	return c.run(isTerminal(os.Stdout), tea.NewProgram(m, opts...))
}

// run executes the tea program, enabling testable wiring.
func (c *CLI) run(isTTY bool, prog teaRunner) error {
	if !isTTY && !c.Force {
		return errNoTTY
	}

	logger.Log.Info("Contact form started", "plain", c.Plain)
	if _, err := prog.Run(); err != nil {
		logger.Log.Error("Contact form failed", "error", err)
		return fmt.Errorf("contactform-tui: %w", err)
	}
	logger.Log.Info("Contact form closed")
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contactform-tui"),
		kong.Description("Fill in the contact form in your terminal."),
		kong.Vars{"version": version},
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
