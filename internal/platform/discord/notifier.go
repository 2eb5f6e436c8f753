package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

// MessageSender is the part of *discordgo.Session the notifier posts through.
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Notifier struct {
	session MessageSender
}

func NewNotifier(session MessageSender) *Notifier {
	return &Notifier{session: session}
}

// Send pings the role and posts an embed with the start time as a Discord timestamp, which every
// client renders in its own zone.
func (n *Notifier) Send(ctx context.Context, reminder *entity.Reminder) error {
	unix := reminder.StartsAt.Unix()
	when := fmt.Sprintf("<t:%d> (<t:%d:R>)", unix, unix)

	msg := &discordgo.MessageSend{
		Content: reminder.Role.Mention,
		Embeds: []*discordgo.MessageEmbed{{
			Title:       reminder.Title(),
			Description: reminder.Body(when),
			Color:       domain.ColorOrange,
		}},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Roles: []string{reminder.Role.ID},
		},
	}

	if _, err := n.session.ChannelMessageSendComplex(reminder.Channel.ID, msg, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: channel %s: %w", domain.ErrDelivery, reminder.Channel.ID, err)
	}

	return nil
}
