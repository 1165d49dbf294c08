// Package command interprets the text commands of the contact book. It turns a line of input
// into directory and record operations and formats the outcome for display. It never prints.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/contact-book/internal/directory"
	"gitlab.com/dirk.krummacker/contact-book/internal/model"
	"go.uber.org/zap"
)

// Reply is the outcome of one command.
type Reply struct {
	Text   string
	Failed bool
	Exit   bool
}

// Handler executes commands against a directory.
type Handler struct {
	Directory *directory.Directory

	// Now returns the reference date for birthday queries.
	Now func() time.Time

	// Horizon is the number of days the birthdays command looks ahead by default.
	Horizon int

	Logger *zap.Logger
}

// NewHandler creates a handler that uses the system clock and the default horizon.
func NewHandler(dir *directory.Directory, logger *zap.Logger) *Handler {
	return &Handler{
		Directory: dir,
		Now:       time.Now,
		Horizon:   directory.DefaultHorizonDays,
		Logger:    logger,
	}
}

// definition describes a command: the number of required arguments and how it is called.
type definition struct {
	minArgs int
	usage   string
	run     func(h *Handler, args []string) (string, error)
}

// commands are all commands known to the handler, without the exit commands.
var commands map[string]definition

func init() {
	commands = map[string]definition{
		"hello":         {0, "hello", (*Handler).hello},
		"add":           {1, "add <name> [phone]", (*Handler).add},
		"change":        {3, "change <name> <old phone> <new phone>", (*Handler).change},
		"phone":         {1, "phone <name>", (*Handler).phone},
		"remove-phone":  {2, "remove-phone <name> <phone>", (*Handler).removePhone},
		"delete":        {1, "delete <name>", (*Handler).delete},
		"all":           {0, "all", (*Handler).all},
		"add-birthday":  {2, "add-birthday <name> <DD.MM.YYYY>", (*Handler).addBirthday},
		"show-birthday": {1, "show-birthday <name>", (*Handler).showBirthday},
		"birthdays":     {0, "birthdays [days]", (*Handler).birthdays},
		"help":          {0, "help", (*Handler).help},
	}
}

// exitCommands end the session.
var exitCommands = []string{"close", "exit"}

// Parse splits a line into a lower case command and its arguments.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Handle executes one line of input.
func (h *Handler) Handle(line string) Reply {
	cmd, args := Parse(line)
	if cmd == "" {
		return Reply{Text: "Enter a command."}
	}
	for _, exit := range exitCommands {
		if cmd == exit {
			return Reply{Text: "Good bye!", Exit: true}
		}
	}
	def, known := commands[cmd]
	if !known {
		h.Logger.Debug("Unknown command", zap.String("command", cmd))
		return Reply{Text: "Invalid command.", Failed: true}
	}

	h.Logger.Debug("Executing command", zap.String("command", cmd), zap.Strings("args", args))
	var text string
	var err error
	if len(args) < def.minArgs {
		err = &model.ArgumentError{Command: cmd, Usage: def.usage}
	} else {
		text, err = def.run(h, args)
	}
	if err != nil {
		h.Logger.Debug("Command failed", zap.String("command", cmd), zap.Error(err))
		return Reply{Text: describe(err), Failed: true}
	}
	return Reply{Text: text}
}

// describe converts an error of the contact book into text for the user.
func describe(err error) string {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var argumentErr *model.ArgumentError
	switch {
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Error: %s.", validationErr.Expected)
	case errors.As(err, &notFoundErr):
		if notFoundErr.Kind == model.KindPhone {
			return "Phone not found."
		}
		return "Contact not found."
	case errors.As(err, &argumentErr):
		return "Please provide all required arguments: " + argumentErr.Usage
	default:
		return fmt.Sprintf("Unexpected error: %s", err)
	}
}

func (h *Handler) hello(args []string) (string, error) {
	return "How can I help you?", nil
}

// add creates the contact if it does not exist yet and adds the optional phone number. Lookup and
// creation happen under one directory lock.
func (h *Handler) add(args []string) (string, error) {
	created, err := h.Directory.Upsert(args[0], func(record *model.Record) error {
		if len(args) > 1 {
			return record.AddPhone(args[1])
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if created {
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

func (h *Handler) change(args []string) (string, error) {
	err := h.Directory.Update(args[0], func(record *model.Record) error {
		return record.EditPhone(args[1], args[2])
	})
	if err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func (h *Handler) phone(args []string) (string, error) {
	record, found := h.Directory.Find(args[0])
	if !found {
		return "", &model.NotFoundError{Kind: model.KindName, Key: args[0]}
	}
	phones := record.Phones()
	if len(phones) == 0 {
		return "No phones saved.", nil
	}
	values := make([]string, 0, len(phones))
	for _, p := range phones {
		values = append(values, p.Render())
	}
	return strings.Join(values, "; "), nil
}

func (h *Handler) removePhone(args []string) (string, error) {
	var removed bool
	err := h.Directory.Update(args[0], func(record *model.Record) error {
		removed = record.RemovePhone(args[1])
		return nil
	})
	if err != nil {
		return "", err
	}
	if !removed {
		return "Phone not found.", nil
	}
	return "Phone removed.", nil
}

func (h *Handler) delete(args []string) (string, error) {
	if !h.Directory.Delete(args[0]) {
		return "Contact not found.", nil
	}
	return "Contact deleted.", nil
}

func (h *Handler) all(args []string) (string, error) {
	records := h.Directory.All()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) addBirthday(args []string) (string, error) {
	err := h.Directory.Update(args[0], func(record *model.Record) error {
		return record.SetBirthday(args[1])
	})
	if err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (h *Handler) showBirthday(args []string) (string, error) {
	record, found := h.Directory.Find(args[0])
	if !found {
		return "", &model.NotFoundError{Kind: model.KindName, Key: args[0]}
	}
	birthday, set := record.Birthday()
	if !set {
		return "Birthday not set.", nil
	}
	return birthday.Render(), nil
}

// birthdays lists the upcoming congratulation dates. An optional argument overrides the number
// of days to look ahead.
func (h *Handler) birthdays(args []string) (string, error) {
	horizon := h.Horizon
	if len(args) > 0 {
		days, err := strconv.Atoi(args[0])
		if err != nil || days < 0 {
			return "", &model.ArgumentError{Command: "birthdays", Usage: "birthdays [days]"}
		}
		horizon = days
	}
	congratulations := h.Directory.UpcomingBirthdays(h.Now(), horizon)
	if len(congratulations) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := make([]string, 0, len(congratulations))
	for _, c := range congratulations {
		lines = append(lines, fmt.Sprintf("%s: %s", c.Name, c))
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) help(args []string) (string, error) {
	lines := []string{"Available commands:"}
	for _, name := range helpOrder {
		lines = append(lines, "  "+commands[name].usage)
	}
	lines = append(lines, "  close | exit")
	return strings.Join(lines, "\n"), nil
}

// helpOrder is the order in which the help command lists the commands.
var helpOrder = []string{
	"hello", "add", "change", "phone", "remove-phone", "delete", "all",
	"add-birthday", "show-birthday", "birthdays", "help",
}
