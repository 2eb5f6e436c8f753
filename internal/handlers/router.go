package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/service"
	"go.uber.org/zap"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelHelp  Level = "help"
)

type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Reply is what a command answers with, before a platform turns it into an embed or attachment.
type Reply struct {
	Level  Level
	Title  string
	Text   string
	Colour int
	Fields []Field
}

// Mentions renders stored references the way the platform displays them.
type Mentions interface {
	Role(id string) string
	Channel(id string) string
	User(id string) string
}

type Router struct {
	services *service.Instance
	inv      command.Invocation
	mentions Mentions
	log      *zap.SugaredLogger
}

func NewRouter(services *service.Instance, inv command.Invocation, mentions Mentions, log *zap.SugaredLogger) *Router {
	return &Router{
		services: services,
		inv:      inv,
		mentions: mentions,
		log:      log,
	}
}

// Execute runs a full command line (category first).
func (r *Router) Execute(ctx context.Context, actor entity.Actor, text string) *Reply {
	cmd, err := command.Parse(text)
	return r.dispatch(ctx, actor, cmd, err)
}

// ExecuteIn runs the arguments of a command whose category is already known.
func (r *Router) ExecuteIn(ctx context.Context, actor entity.Actor, category command.Category, text string) *Reply {
	cmd, err := command.ParseIn(category, text)
	return r.dispatch(ctx, actor, cmd, err)
}

func (r *Router) dispatch(ctx context.Context, actor entity.Actor, cmd *command.Command, err error) *Reply {
	if err != nil {
		return r.parseError(cmd, err)
	}

	switch cmd.Category {
	case command.CategoryCampaign:
		if cmd.Sub != command.SubHelp && !r.services.Policy.CanUse(actor, entity.KindCampaign) {
			return failure("You are not allowed to manage campaigns.")
		}
		return r.campaign(ctx, actor, cmd)
	case command.CategoryOneshot:
		if cmd.Sub != command.SubHelp && !r.services.Policy.CanUse(actor, entity.KindOneshot) {
			return failure("You are not allowed to manage oneshots.")
		}
		return r.oneshot(ctx, actor, cmd)
	default:
		return r.help(cmd)
	}
}

func (r *Router) help(cmd *command.Command) *Reply {
	if len(cmd.Args) == 0 {
		return helpReply(command.Overview(r.inv))
	}

	help := command.SubcommandHelp(command.ParseCategory(cmd.Args[0]))
	if help == nil {
		return warn("Unknown category.")
	}
	return helpReply(help)
}

func (r *Router) parseError(cmd *command.Command, err error) *Reply {
	var usage *command.UsageError

	switch {
	case errors.As(err, &usage):
		return warn(fmt.Sprintf("Usage: `%s %s`", r.inv.Category(usage.Category), usage.Usage))
	case errors.Is(err, command.ErrUnknownSubcommand) && cmd != nil:
		return warn(fmt.Sprintf("Unknown subcommand. Try `%s help` for a full list of subcommands.", r.inv.Category(cmd.Category)))
	default:
		return warn(fmt.Sprintf("Unknown command. Try `%s` for more information.", r.inv.Help()))
	}
}

// fail turns a service error into a reply. Unexpected errors are logged and hidden from the user.
func (r *Router) fail(kind entity.Kind, err error) *Reply {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return warn(fmt.Sprintf("No %s found with that id or name.", kind))
	case errors.Is(err, domain.ErrForbidden):
		return failure(fmt.Sprintf("Only the creator of this %s or an admin can change it.", kind))
	case errors.Is(err, domain.ErrNameMismatch):
		return warn(fmt.Sprintf("The name does not match the %s with that id. Nothing was deleted.", kind))
	case errors.Is(err, domain.ErrMalformedTime):
		return warn("Invalid time. Use the format YYYY-MM-DD hh:mmAM/PM, e.g. 2024-05-01 03:00PM.")
	case errors.Is(err, domain.ErrInvalidArgument):
		return warn(capitalize(strings.TrimPrefix(err.Error(), domain.ErrInvalidArgument.Error()+": ")))
	}

	r.log.Errorw("Command failed", "kind", kind, "error", err)
	return failure("Something went wrong. Please try again later.")
}

// eventField renders one event for list and details replies.
func (r *Router) eventField(event entity.Schedule, description, creatorID string, detailed bool) Field {
	var lines []string

	if detailed && description != "" {
		lines = append(lines, description)
	}

	when := "not scheduled"
	if event.Time != "" {
		when = event.Time
	}
	label := "Session"
	if event.Kind == entity.KindOneshot {
		label = "Time"
	}
	lines = append(lines, fmt.Sprintf("%s: %s", label, when))

	if detailed {
		lines = append(lines,
			fmt.Sprintf("Role: %s", r.reference(event.RoleID, r.mentions.Role)),
			fmt.Sprintf("Channel: %s", r.reference(event.ChannelID, r.mentions.Channel)),
		)
		if event.Kind == entity.KindCampaign {
			lines = append(lines, fmt.Sprintf("Game day reminder: %t", event.MorningReminder))
		}
		if creatorID != "" {
			lines = append(lines, fmt.Sprintf("Created by: %s", r.mentions.User(creatorID)))
		}
	}

	return Field{
		Name:  fmt.Sprintf("#%d %s", event.ID, event.Name),
		Value: strings.Join(lines, "\n"),
	}
}

func (r *Router) reference(id string, render func(string) string) string {
	if id == "" {
		return "not set"
	}
	return render(id)
}

// deleteArgs reads `<name...> <id>`; names with spaces work without quotes.
func deleteArgs(cmd *command.Command) (string, int64, error) {
	last := len(cmd.Args) - 1
	id, err := cmd.ID(last)
	if err != nil {
		return "", 0, err
	}
	return strings.Join(cmd.Args[:last], " "), id, nil
}

func info(text string) *Reply {
	return &Reply{Level: LevelInfo, Title: "Info", Text: text, Colour: domain.ColorBlue}
}

func warn(text string) *Reply {
	return &Reply{Level: LevelWarn, Title: "Warning", Text: text, Colour: domain.ColorOrange}
}

func failure(text string) *Reply {
	return &Reply{Level: LevelError, Title: "Error", Text: text, Colour: domain.ColorRed}
}

func helpReply(help *command.Help) *Reply {
	reply := &Reply{
		Level:  LevelHelp,
		Title:  help.Title,
		Text:   help.Description,
		Colour: help.Colour,
	}
	for _, entry := range help.Entries {
		reply.Fields = append(reply.Fields, Field{Name: entry.Name, Value: entry.Value})
	}
	return reply
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
