package handlers

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/service"
	"github.com/diegoclair/campaign-reminder-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

type fakeSender struct {
	sent []sentEmbed
	err  error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sent = append(f.sent, sentEmbed{channelID: channelID, embed: embed})
	return &discordgo.Message{ChannelID: channelID}, f.err
}

func newTestDiscordHandler(t *testing.T) (*DiscordHandler, *mocks.MockCampaignService, *mocks.MockAccessPolicy) {
	t.Helper()

	ctrl := gomock.NewController(t)
	campaigns := mocks.NewMockCampaignService(ctrl)
	policy := mocks.NewMockAccessPolicy(ctrl)

	services := &service.Instance{
		Campaign: campaigns,
		Oneshot:  mocks.NewMockOneshotService(ctrl),
		Policy:   policy,
	}
	log := zap.NewNop().Sugar()
	router := NewRouter(services, command.Invocation{Prefix: "$", HelpCommand: "help"}, DiscordMentions{}, log)

	return NewDiscordHandler(router, "$", log), campaigns, policy
}

func message(content string, author *discordgo.User, roles ...string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ChannelID: "C1",
		GuildID:   "G1",
		Content:   content,
		Author:    author,
		Member:    &discordgo.Member{Roles: roles},
	}}
}

func TestDiscordHandler_handle(t *testing.T) {
	user := &discordgo.User{ID: "111"}

	tests := []struct {
		name      string
		msg       *discordgo.MessageCreate
		buildMock func(campaigns *mocks.MockCampaignService, policy *mocks.MockAccessPolicy)
		wantSent  bool
		wantTitle string
		wantColor int
	}{
		{
			name:      "Should reply to help",
			msg:       message("$help", user),
			wantSent:  true,
			wantTitle: "Help - Overview",
			wantColor: domain.ColorBlurple,
		},
		{
			name: "Should pass member roles to the policy",
			msg:  message("$campaign list", user, "R1", "R2"),
			buildMock: func(campaigns *mocks.MockCampaignService, policy *mocks.MockAccessPolicy) {
				policy.EXPECT().CanUse(entity.Actor{UserID: "111", RoleIDs: []string{"R1", "R2"}}, entity.KindCampaign).Return(true).Times(1)
				campaigns.EXPECT().List(gomock.Any()).Return([]*entity.Campaign{{ID: 1, Name: "Strahd"}}, nil).Times(1)
			},
			wantSent:  true,
			wantTitle: "Campaigns",
			wantColor: domain.ColorBlue,
		},
		{
			name:     "Should ignore messages without the prefix",
			msg:      message("campaign list", user),
			wantSent: false,
		},
		{
			name:     "Should ignore a bare prefix",
			msg:      message("$ ", user),
			wantSent: false,
		},
		{
			name:     "Should ignore commands of other bots sharing the prefix",
			msg:      message("$play never gonna give you up", user),
			wantSent: false,
		},
		{
			name:     "Should ignore bots",
			msg:      message("$help", &discordgo.User{ID: "999", Bot: true}),
			wantSent: false,
		},
		{
			name: "Should ignore direct messages",
			msg: &discordgo.MessageCreate{Message: &discordgo.Message{
				ChannelID: "D1",
				Content:   "$help",
				Author:    user,
			}},
			wantSent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, campaigns, policy := newTestDiscordHandler(t)
			if tt.buildMock != nil {
				tt.buildMock(campaigns, policy)
			}

			sender := &fakeSender{}
			handler.handle(sender, tt.msg)

			if !tt.wantSent {
				assert.Empty(t, sender.sent)
				return
			}

			require.Len(t, sender.sent, 1)
			assert.Equal(t, tt.msg.ChannelID, sender.sent[0].channelID)
			assert.Equal(t, tt.wantTitle, sender.sent[0].embed.Title)
			assert.Equal(t, tt.wantColor, sender.sent[0].embed.Color)
		})
	}
}

func TestDiscordHandler_handle_SendFailure(t *testing.T) {
	handler, _, _ := newTestDiscordHandler(t)

	sender := &fakeSender{err: assert.AnError}
	handler.handle(sender, message("$help campaign", &discordgo.User{ID: "111"}))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Managing Campaigns - Help", sender.sent[0].embed.Title)
}

func TestEmbed(t *testing.T) {
	reply := &Reply{
		Title:  "Campaign Details",
		Text:   "",
		Colour: domain.ColorBlue,
		Fields: []Field{{Name: "#1 Strahd", Value: "Session: not scheduled"}},
	}

	embed := Embed(reply)

	assert.Equal(t, "Campaign Details", embed.Title)
	assert.Equal(t, domain.ColorBlue, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, &discordgo.MessageEmbedField{Name: "#1 Strahd", Value: "Session: not scheduled"}, embed.Fields[0])
}
