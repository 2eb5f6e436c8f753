package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Slash commands registered in the Slack app.
const (
	SlashCampaign  = "/campaign"
	SlashOneshot   = "/oneshot"
	SlashEventHelp = "/eventhelp"
)

// SlackMentions renders references as Slack mention tokens. Roles are user groups.
type SlackMentions struct{}

func (SlackMentions) Role(id string) string    { return "<!subteam^" + id + ">" }
func (SlackMentions) Channel(id string) string { return "<#" + id + ">" }
func (SlackMentions) User(id string) string    { return "<@" + id + ">" }

type SlackHandler struct {
	router        *Router
	roles         contract.RoleLookup
	signingSecret string
	log           *zap.SugaredLogger
}

func NewSlackHandler(router *Router, roles contract.RoleLookup, signingSecret string, log *zap.SugaredLogger) *SlackHandler {
	return &SlackHandler{
		router:        router,
		roles:         roles,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warnw("Rejected slash command with invalid signature", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := SlackMessage(h.handleCommand(r.Context(), &s))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Errorw("Failed to write slash command response", "error", err)
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, slashCmd *slack.SlashCommand) *Reply {
	var category command.Category

	switch slashCmd.Command {
	case SlashCampaign:
		category = command.CategoryCampaign
	case SlashOneshot:
		category = command.CategoryOneshot
	case SlashEventHelp:
		category = command.CategoryHelp
	default:
		return warn(fmt.Sprintf("Unknown command %s.", slashCmd.Command))
	}

	return h.router.ExecuteIn(ctx, h.actor(ctx, slashCmd.UserID), category, slashCmd.Text)
}

// actor looks up the user's groups. A failed lookup leaves the actor without roles,
// which still allows everything the role lists do not restrict.
func (h *SlackHandler) actor(ctx context.Context, userID string) entity.Actor {
	actor := entity.Actor{UserID: userID}

	roles, err := h.roles.UserRoles(ctx, userID)
	if err != nil {
		h.log.Warnw("Failed to look up user groups", "user", userID, "error", err)
		return actor
	}

	actor.RoleIDs = roles
	return actor
}

// SlackMessage converts a reply to a slash command response. Only successful results are
// posted to the channel.
func SlackMessage(reply *Reply) *slack.Msg {
	responseType := slack.ResponseTypeEphemeral
	if reply.Level == LevelInfo {
		responseType = slack.ResponseTypeInChannel
	}

	attachment := slack.Attachment{
		Color:      fmt.Sprintf("#%06x", reply.Colour),
		Title:      reply.Title,
		Text:       reply.Text,
		MarkdownIn: []string{"text", "fields"},
	}
	for _, f := range reply.Fields {
		attachment.Fields = append(attachment.Fields, slack.AttachmentField{
			Title: f.Name,
			Value: f.Value,
			Short: f.Inline,
		})
	}

	return &slack.Msg{
		ResponseType: responseType,
		Attachments:  []slack.Attachment{attachment},
	}
}
