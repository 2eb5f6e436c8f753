package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

const discordReplyTimeout = 10 * time.Second

// DiscordMentions renders references as Discord mention tokens.
type DiscordMentions struct{}

func (DiscordMentions) Role(id string) string    { return "<@&" + id + ">" }
func (DiscordMentions) Channel(id string) string { return "<#" + id + ">" }
func (DiscordMentions) User(id string) string    { return "<@" + id + ">" }

// embedSender is the part of *discordgo.Session the handler replies through.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordHandler struct {
	router *Router
	prefix string
	log    *zap.SugaredLogger
}

func NewDiscordHandler(router *Router, prefix string, log *zap.SugaredLogger) *DiscordHandler {
	return &DiscordHandler{
		router: router,
		prefix: prefix,
		log:    log,
	}
}

// HandleMessage is registered on the discordgo session for MessageCreate events.
func (h *DiscordHandler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.handle(s, m)
}

func (h *DiscordHandler) handle(sender embedSender, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	text, ok := h.commandText(m.Content)
	if !ok {
		return
	}

	actor := entity.Actor{UserID: m.Author.ID}
	if m.Member != nil {
		actor.RoleIDs = m.Member.Roles
	}

	ctx, cancel := context.WithTimeout(context.Background(), discordReplyTimeout)
	defer cancel()

	reply := h.router.Execute(ctx, actor, text)

	if _, err := sender.ChannelMessageSendEmbed(m.ChannelID, Embed(reply), discordgo.WithContext(ctx)); err != nil {
		h.log.Errorw("Failed to send command reply", "guild", m.GuildID, "channel", m.ChannelID, "error", err)
	}
}

// commandText strips the prefix and keeps only messages addressed to this bot; other bots
// sharing the prefix are left alone.
func (h *DiscordHandler) commandText(content string) (string, bool) {
	if !strings.HasPrefix(content, h.prefix) {
		return "", false
	}

	text := strings.TrimSpace(strings.TrimPrefix(content, h.prefix))
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", false
	}

	switch command.Category(strings.ToLower(fields[0])) {
	case command.CategoryHelp, command.CategoryCampaign, command.CategoryOneshot:
		return text, true
	}
	return "", false
}

// Embed converts a reply to a Discord embed.
func Embed(reply *Reply) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       reply.Title,
		Description: reply.Text,
		Color:       reply.Colour,
	}

	for _, f := range reply.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	return embed
}
