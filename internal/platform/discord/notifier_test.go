package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	channelID string
	sent      *discordgo.MessageSend
	err       error
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelID = channelID
	f.sent = data
	if f.err != nil {
		return nil, f.err
	}
	return &discordgo.Message{ChannelID: channelID}, nil
}

func testReminder(kind entity.Kind, threshold entity.Threshold) *entity.Reminder {
	return &entity.Reminder{
		Event:     entity.Schedule{Kind: kind, ID: 1, Name: "Strahd"},
		Threshold: threshold,
		Role:      entity.Role{ID: "R1", Mention: "<@&R1>"},
		Channel:   entity.Channel{ID: "C1"},
		StartsAt:  time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestNotifier_Send(t *testing.T) {
	tests := []struct {
		name      string
		reminder  *entity.Reminder
		wantTitle string
		wantBody  string
	}{
		{
			name:      "Should send the one hour reminder of a campaign",
			reminder:  testReminder(entity.KindCampaign, entity.ThresholdOneHour),
			wantTitle: "Session Reminder",
			wantBody:  "The session starts in 1 hour, at <t:1714568400> (<t:1714568400:R>)",
		},
		{
			name:      "Should send the game day reminder",
			reminder:  testReminder(entity.KindCampaign, entity.ThresholdGameDay),
			wantTitle: "Session Reminder",
			wantBody:  "Today is game day! The session is at <t:1714568400> (<t:1714568400:R>)",
		},
		{
			name:      "Should title oneshot reminders",
			reminder:  testReminder(entity.KindOneshot, entity.ThresholdOneHour),
			wantTitle: "Oneshot Reminder",
			wantBody:  "The session starts in 1 hour, at <t:1714568400> (<t:1714568400:R>)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &fakeSession{}
			notifier := NewNotifier(session)

			require.NoError(t, notifier.Send(context.Background(), tt.reminder))

			assert.Equal(t, "C1", session.channelID)
			assert.Equal(t, "<@&R1>", session.sent.Content)
			assert.Equal(t, []string{"R1"}, session.sent.AllowedMentions.Roles)
			require.Len(t, session.sent.Embeds, 1)
			assert.Equal(t, tt.wantTitle, session.sent.Embeds[0].Title)
			assert.Equal(t, tt.wantBody, session.sent.Embeds[0].Description)
			assert.Equal(t, domain.ColorOrange, session.sent.Embeds[0].Color)
		})
	}
}

func TestNotifier_Send_Failure(t *testing.T) {
	session := &fakeSession{err: assert.AnError}
	notifier := NewNotifier(session)

	err := notifier.Send(context.Background(), testReminder(entity.KindCampaign, entity.ThresholdOneHour))

	assert.ErrorIs(t, err, domain.ErrDelivery)
	assert.ErrorIs(t, err, assert.AnError)
}
