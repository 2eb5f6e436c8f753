package main

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/handlers"
	discordplatform "github.com/diegoclair/campaign-reminder-bot/internal/platform/discord"
	"github.com/diegoclair/campaign-reminder-bot/internal/scheduler"
)

// startDiscord opens the gateway. Every guild the bot is in gets its own scheduler once its
// GUILD_CREATE has filled the state cache.
func (a *app) startDiscord() (*platform, error) {
	session, err := discordgo.New("Bot " + a.cfg.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	notifier := discordplatform.NewNotifier(session)
	manager := scheduler.NewManager(func(guildID string) (contract.ReminderScheduler, error) {
		return a.newScheduler(discordplatform.NewDirectory(session.State, guildID), notifier, guildID)
	}, a.log)

	router := handlers.NewRouter(a.services, command.Invocation{Prefix: a.cfg.CommandPrefix, HelpCommand: string(command.CategoryHelp)}, handlers.DiscordMentions{}, a.log)
	commands := handlers.NewDiscordHandler(router, a.cfg.CommandPrefix, a.log)

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.log.Infow("Connected to discord", "user", r.User.Username, "guilds", len(r.Guilds))
		if err := s.UpdateGameStatus(0, fmt.Sprintf("Try %shelp for more information.", a.cfg.CommandPrefix)); err != nil {
			a.log.Warnw("Failed to update presence", "error", err)
		}
	})

	session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		if g.Unavailable {
			return
		}
		if err := manager.Ensure(g.ID); err != nil {
			a.log.Errorw("Failed to start guild scheduler", "guild", g.ID, "error", err)
		}
	})

	session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildDelete) {
		// an outage, not a removal
		if g.Unavailable {
			return
		}
		manager.Remove(g.ID)
	})

	session.AddHandler(commands.HandleMessage)

	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("failed to open discord session: %w", err)
	}

	return &platform{
		manager: manager,
		close: func() {
			if err := session.Close(); err != nil {
				a.log.Warnw("Failed to close discord session", "error", err)
			}
		},
	}, nil
}
