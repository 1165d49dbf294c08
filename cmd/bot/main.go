package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gitlab.com/dirk.krummacker/contact-book/internal/command"
	"gitlab.com/dirk.krummacker/contact-book/internal/directory"
	"gitlab.com/dirk.krummacker/contact-book/internal/logging"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	"go.uber.org/zap"
)

// CLI holds the flags of the interactive contact book.
//
// Usage example on the command line:
// > go run main.go --today=10.06.2024 --horizon=14
type CLI struct {
	Horizon  int    `help:"Days to look ahead for upcoming birthdays." default:"7" env:"BIRTHDAY_HORIZON_DAYS"`
	Today    string `help:"Use this date instead of the current one." placeholder:"DD.MM.YYYY"`
	LogLevel string `help:"Level of the log written to stderr." default:"warn" env:"LOG_LEVEL"`
	Plain    bool   `help:"Force plain text output even if stdout is a TTY."`
}

// Run starts the read loop on stdin and stdout.
func (c *CLI) Run() error {
	if c.Horizon < 0 {
		return fmt.Errorf("invalid horizon %d", c.Horizon)
	}
	logger, err := logging.New(c.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	handler := command.NewHandler(directory.New(), logger)
	handler.Horizon = c.Horizon
	if c.Today != "" {
		today, err := time.Parse(model.BirthdayLayout, c.Today)
		if err != nil {
			return fmt.Errorf("invalid date %q, use DD.MM.YYYY", c.Today)
		}
		handler.Now = func() time.Time { return today }
	}

	colored := !c.Plain && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	logger.Debug("Starting contact book", zap.Int("horizon", c.Horizon), zap.Bool("colored", colored))
	return repl(os.Stdin, os.Stdout, handler, newStyles(colored))
}

// styles decorate the console output.
type styles struct {
	title   func(...string) string
	prompt  func(...string) string
	reply   func(...string) string
	failure func(...string) string
}

// newStyles returns colored styles, or styles that leave the text unchanged.
func newStyles(colored bool) styles {
	if !colored {
		plain := func(strs ...string) string {
			var s string
			for _, str := range strs {
				s += str
			}
			return s
		}
		return styles{title: plain, prompt: plain, reply: plain, failure: plain}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).Render,
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render,
		reply:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render,
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render,
	}
}

// repl reads commands line by line until an exit command or the end of the input.
func repl(in io.Reader, out io.Writer, handler *command.Handler, st styles) error {
	fmt.Fprintln(out, st.title("Welcome to the assistant bot!"))
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, st.prompt("Enter a command: "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		reply := handler.Handle(scanner.Text())
		if reply.Failed {
			fmt.Fprintln(out, st.failure(reply.Text))
		} else {
			fmt.Fprintln(out, st.reply(reply.Text))
		}
		if reply.Exit {
			return nil
		}
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contact-book"),
		kong.Description("An address book with birthday reminders."))
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
