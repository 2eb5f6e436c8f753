package handlers_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/service"
	"github.com/diegoclair/campaign-reminder-bot/internal/filestore"
	"github.com/diegoclair/campaign-reminder-bot/internal/handlers"
	"github.com/diegoclair/campaign-reminder-bot/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	gmActor     = entity.Actor{UserID: "111"}
	playerActor = entity.Actor{UserID: "222"}
	adminActor  = entity.Actor{UserID: "333", RoleIDs: []string{"900"}}
)

func setupRouter(t *testing.T) *handlers.Router {
	t.Helper()

	store, err := filestore.New(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	log := zap.NewNop().Sugar()
	services := service.NewInstance(filestore.NewInstance(store), service.NewAccessPolicy(nil, nil, []string{"900"}), berlin, log)

	return handlers.NewRouter(services, test.DiscordInvocation, handlers.DiscordMentions{}, log)
}

type step struct {
	actor     entity.Actor
	text      string
	wantLevel handlers.Level
	wantText  string
}

func runSteps(t *testing.T, router *handlers.Router, steps []step) {
	t.Helper()

	for _, s := range steps {
		reply := router.Execute(context.Background(), s.actor, s.text)
		require.NotNil(t, reply, s.text)
		assert.Equal(t, s.wantLevel, reply.Level, s.text)
		if s.wantText != "" {
			assert.Equal(t, s.wantText, reply.Text, s.text)
		}
	}
}

func TestRouter_CampaignLifecycle(t *testing.T) {
	router := setupRouter(t)

	runSteps(t, router, []step{
		{gmActor, `campaign add "Curse of Strahd" gothic horror`, handlers.LevelInfo, "Successfully added the campaign Curse of Strahd with id 1."},
		{gmActor, "campaign add Rime", handlers.LevelInfo, "Successfully added the campaign Rime with id 2."},
		{gmActor, "campaign session 1 2024-5-1 3:00pm", handlers.LevelInfo, "Successfully changed the next session of Curse of Strahd to 2024-05-01 03:00PM."},
		{gmActor, "campaign session 1 next friday", handlers.LevelWarn, "Invalid time. Use the format YYYY-MM-DD hh:mmAM/PM, e.g. 2024-05-01 03:00PM."},
		{gmActor, "campaign role 1 <@&555>", handlers.LevelInfo, "Successfully changed the role of Curse of Strahd to <@&555>."},
		{gmActor, "campaign channel 1 <#777>", handlers.LevelInfo, "Successfully changed the channel of Curse of Strahd to <#777>."},
		{gmActor, "campaign notification 1 on", handlers.LevelInfo, "Curse of Strahd now also gets a reminder on the morning of game day."},
		{gmActor, "campaign notification 1 maybe", handlers.LevelWarn, `"maybe" must be true or false.`},
		{playerActor, "campaign session 1 clear", handlers.LevelError, "Only the creator of this campaign or an admin can change it."},
		{adminActor, "campaign session 1 clear", handlers.LevelInfo, "Cleared the next session of Curse of Strahd."},
		{gmActor, "campaign delete Rime 1", handlers.LevelWarn, "The name does not match the campaign with that id. Nothing was deleted."},
		{gmActor, "campaign delete Curse of Strahd 1", handlers.LevelInfo, "Successfully deleted the campaign Curse of Strahd."},
		{gmActor, "campaign details 1", handlers.LevelWarn, "No campaign found with that id or name."},
		{gmActor, "campaign delete Rime abc", handlers.LevelWarn, `"abc" is not a valid campaign id.`},
	})
}

func TestRouter_Details(t *testing.T) {
	router := setupRouter(t)

	runSteps(t, router, []step{
		{gmActor, "campaign add Strahd", handlers.LevelInfo, ""},
		{gmActor, "campaign role 1 555", handlers.LevelInfo, ""},
		{gmActor, "campaign add Strahd2", handlers.LevelInfo, ""},
	})

	reply := router.Execute(context.Background(), playerActor, "campaign details strahd")
	require.Equal(t, handlers.LevelInfo, reply.Level)
	assert.Equal(t, "Campaign Details", reply.Title)
	require.Len(t, reply.Fields, 2)
	assert.Equal(t, "#1 Strahd", reply.Fields[0].Name)
	assert.Equal(t, "Session: not scheduled\nRole: <@&555>\nChannel: not set\nGame day reminder: false\nCreated by: <@111>", reply.Fields[0].Value)
	assert.Equal(t, "#2 Strahd2", reply.Fields[1].Name)

	reply = router.Execute(context.Background(), playerActor, "campaign list")
	require.Equal(t, handlers.LevelInfo, reply.Level)
	assert.Equal(t, "2 campaigns", reply.Text)
	require.Len(t, reply.Fields, 2)
	assert.Equal(t, "Session: not scheduled", reply.Fields[0].Value)
}

func TestRouter_OneshotLifecycle(t *testing.T) {
	router := setupRouter(t)

	runSteps(t, router, []step{
		{gmActor, "oneshot list", handlers.LevelInfo, "There are no oneshots yet. Add one with `$oneshot add <name>`."},
		{gmActor, "oneshot add Tomb", handlers.LevelInfo, "Successfully added the oneshot Tomb with id 1."},
		{gmActor, "oneshot time 1 2024-06-01 07:30PM", handlers.LevelInfo, "Successfully changed the time of Tomb to 2024-06-01 07:30PM."},
		{gmActor, "oneshot description 1 a deadly dungeon", handlers.LevelInfo, "Successfully updated the description of Tomb."},
		{gmActor, "oneshot role 1 clear", handlers.LevelInfo, "Successfully changed the role of Tomb to not set."},
		{gmActor, "oneshot session 1 2024-06-01 07:30PM", handlers.LevelWarn, "Unknown subcommand. Try `$oneshot help` for a full list of subcommands."},
		{gmActor, "oneshot time 1 clear", handlers.LevelInfo, "Cleared the time of Tomb."},
		{gmActor, "oneshot delete Tomb 1", handlers.LevelInfo, "Successfully deleted the oneshot Tomb."},
	})
}

func TestRouter_HelpAndErrors(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name      string
		text      string
		wantLevel handlers.Level
		wantTitle string
		wantText  string
	}{
		{name: "Should show the overview for an empty command", text: "", wantLevel: handlers.LevelHelp, wantTitle: "Help - Overview"},
		{name: "Should show the overview for help", text: "help", wantLevel: handlers.LevelHelp, wantTitle: "Help - Overview"},
		{name: "Should show the campaign help", text: "help campaign", wantLevel: handlers.LevelHelp, wantTitle: "Managing Campaigns - Help"},
		{name: "Should show the oneshot help without a subcommand", text: "oneshot", wantLevel: handlers.LevelHelp, wantTitle: "Managing Oneshots - Help"},
		{name: "Should warn about an unknown help category", text: "help dragons", wantLevel: handlers.LevelWarn, wantText: "Unknown category."},
		{name: "Should warn about an unknown category", text: "dragons", wantLevel: handlers.LevelWarn, wantText: "Unknown command. Try `$help` for more information."},
		{name: "Should warn about an unknown subcommand", text: "campaign fly", wantLevel: handlers.LevelWarn, wantText: "Unknown subcommand. Try `$campaign help` for a full list of subcommands."},
		{name: "Should show usage for missing arguments", text: "campaign role 1", wantLevel: handlers.LevelWarn, wantText: "Usage: `$campaign role <campaign-id> <role|clear>`"},
		{name: "Should fall back to plain splitting on an unbalanced quote", text: "campaign add Storm King's Thunder", wantLevel: handlers.LevelInfo, wantText: "Successfully added the campaign Storm with id 1."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := router.Execute(context.Background(), gmActor, tt.text)
			assert.Equal(t, tt.wantLevel, reply.Level)
			if tt.wantTitle != "" {
				assert.Equal(t, tt.wantTitle, reply.Title)
			}
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, reply.Text)
			}
		})
	}
}

func TestRouter_AccessDenied(t *testing.T) {
	m, router, ctrl := test.GetRouterTest(t, test.DiscordInvocation, handlers.DiscordMentions{})
	defer ctrl.Finish()

	m.AccessPolicyMock.EXPECT().CanUse(playerActor, entity.KindOneshot).Return(false).Times(1)

	reply := router.Execute(context.Background(), playerActor, "oneshot list")
	assert.Equal(t, handlers.LevelError, reply.Level)
	assert.Equal(t, "You are not allowed to manage oneshots.", reply.Text)

	// help stays available
	reply = router.Execute(context.Background(), playerActor, "oneshot help")
	assert.Equal(t, handlers.LevelHelp, reply.Level)
}

func TestRouter_UnexpectedError(t *testing.T) {
	m, router, ctrl := test.GetRouterTest(t, test.DiscordInvocation, handlers.DiscordMentions{})
	defer ctrl.Finish()

	m.AccessPolicyMock.EXPECT().CanUse(gomock.Any(), entity.KindCampaign).Return(true).Times(1)
	m.CampaignServiceMock.EXPECT().List(gomock.Any()).Return(nil, assert.AnError).Times(1)

	reply := router.Execute(context.Background(), gmActor, "campaign list")
	assert.Equal(t, handlers.LevelError, reply.Level)
	assert.Equal(t, "Something went wrong. Please try again later.", reply.Text)
}
