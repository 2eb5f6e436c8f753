package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/mattn/go-shellwords"
)

type Category string

const (
	CategoryHelp     Category = "help"
	CategoryCampaign Category = "campaign"
	CategoryOneshot  Category = "oneshot"
)

type Subcommand string

const (
	SubHelp         Subcommand = "help"
	SubList         Subcommand = "list"
	SubDetails      Subcommand = "details"
	SubAdd          Subcommand = "add"
	SubDelete       Subcommand = "delete"
	SubDescription  Subcommand = "description"
	SubSession      Subcommand = "session"
	SubTime         Subcommand = "time"
	SubRole         Subcommand = "role"
	SubChannel      Subcommand = "channel"
	SubNotification Subcommand = "notification"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownSubcommand = errors.New("unknown subcommand")
	ErrUsage             = errors.New("wrong number of arguments")
)

type Command struct {
	Category Category
	Sub      Subcommand
	Args     []string
	Raw      string
}

// Parse reads a full command line such as `campaign add "Curse of Strahd" gothic horror`.
// An empty line is the help overview.
func Parse(text string) (*Command, error) {
	parts := split(text)
	if len(parts) == 0 {
		return &Command{Category: CategoryHelp, Raw: text}, nil
	}

	category := Category(strings.ToLower(parts[0]))
	switch category {
	case CategoryHelp, CategoryCampaign, CategoryOneshot:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, parts[0])
	}

	return build(category, parts[1:], text)
}

// ParseIn reads the arguments of a command whose category is already known, as with
// Slack slash commands where `/campaign` selects the category.
func ParseIn(category Category, text string) (*Command, error) {
	return build(category, split(text), text)
}

func build(category Category, args []string, raw string) (*Command, error) {
	cmd := &Command{Category: category, Raw: raw}

	if category == CategoryHelp {
		cmd.Args = args
		return cmd, nil
	}

	if len(args) == 0 {
		cmd.Sub = SubHelp
		return cmd, nil
	}

	sub := Subcommand(strings.ToLower(args[0]))
	spec, ok := lookup(category, sub)
	if !ok {
		return cmd, fmt.Errorf("%w: %s %s", ErrUnknownSubcommand, category, args[0])
	}

	cmd.Sub = sub
	cmd.Args = args[1:]

	if len(cmd.Args) < spec.minArgs || (spec.maxArgs >= 0 && len(cmd.Args) > spec.maxArgs) {
		return cmd, &UsageError{Category: category, Usage: spec.Usage}
	}

	return cmd, nil
}

// UsageError reports a subcommand called with the wrong number of arguments.
type UsageError struct {
	Category Category
	Usage    string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s %s", e.Category, e.Usage)
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// ID parses argument i as an event id.
func (c *Command) ID(i int) (int64, error) {
	if i >= len(c.Args) {
		return 0, fmt.Errorf("%w: missing %s id", domain.ErrInvalidArgument, c.Category)
	}

	id, err := strconv.ParseInt(c.Args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid %s id", domain.ErrInvalidArgument, c.Args[i], c.Category)
	}

	return id, nil
}

// Rest joins the arguments from i on, the way free text (names, descriptions, times) is written.
func (c *Command) Rest(i int) string {
	if i >= len(c.Args) {
		return ""
	}
	return strings.Join(c.Args[i:], " ")
}

// Flag parses argument i as a boolean switch.
func (c *Command) Flag(i int) (bool, error) {
	if i >= len(c.Args) {
		return false, fmt.Errorf("%w: missing true or false", domain.ErrInvalidArgument)
	}

	switch strings.ToLower(c.Args[i]) {
	case domain.FlagTrue, "on", "yes":
		return true, nil
	case domain.FlagFalse, "off", "no":
		return false, nil
	}

	return false, fmt.Errorf("%w: %q must be true or false", domain.ErrInvalidArgument, c.Args[i])
}

// Shell operators would end the line for shellwords, but chat mentions are full of them.
// Backslashes are kept as typed rather than read as escapes.
var (
	hideOperators    = strings.NewReplacer(";", "\uE000", "&", "\uE001", "|", "\uE002", "<", "\uE003", ">", "\uE004", "\\", "\uE005")
	restoreOperators = strings.NewReplacer("\uE000", ";", "\uE001", "&", "\uE002", "|", "\uE003", "<", "\uE004", ">", "\uE005", "\\")
)

// split breaks text into arguments, honouring quotes. Unbalanced quotes (Storm King's Thunder)
// fall back to plain whitespace splitting.
func split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	parts, err := shellwords.Parse(hideOperators.Replace(text))
	if err != nil {
		return strings.Fields(text)
	}

	for i, part := range parts {
		parts[i] = restoreOperators.Replace(part)
	}
	return parts
}
