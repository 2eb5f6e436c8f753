package main

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/handlers"
	slackplatform "github.com/diegoclair/campaign-reminder-bot/internal/platform/slack"
	"github.com/diegoclair/campaign-reminder-bot/internal/scheduler"
	"github.com/slack-go/slack"
)

// startSlack runs a single scheduler for the workspace of the bot token.
func (a *app) startSlack() (*platform, error) {
	client := slack.New(a.cfg.SlackBotToken)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	auth, err := client.AuthTestContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with slack: %w", err)
	}
	a.log.Infow("Connected to slack", "team", auth.Team, "user", auth.User)

	directory := slackplatform.NewDirectory(client)
	notifier := slackplatform.NewNotifier(client)

	manager := scheduler.NewManager(func(teamID string) (contract.ReminderScheduler, error) {
		return a.newScheduler(directory, notifier, teamID)
	}, a.log)
	if err := manager.Ensure(auth.TeamID); err != nil {
		return nil, err
	}

	inv := command.Invocation{Prefix: "/", HelpCommand: handlers.SlashEventHelp[1:]}
	router := handlers.NewRouter(a.services, inv, handlers.SlackMentions{}, a.log)

	return &platform{
		manager: manager,
		slack:   handlers.NewSlackHandler(router, directory, a.cfg.SlackSigningSecret, a.log),
		close:   func() {},
	}, nil
}
