package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

// StateReader is the part of *discordgo.State the directory reads from. The state cache is
// kept current by the gateway events, so lookups never hit the REST API.
type StateReader interface {
	Role(guildID, roleID string) (*discordgo.Role, error)
	Channel(channelID string) (*discordgo.Channel, error)
}

// Directory resolves role and channel ids inside one guild.
type Directory struct {
	state   StateReader
	guildID string
}

func NewDirectory(state StateReader, guildID string) *Directory {
	return &Directory{
		state:   state,
		guildID: guildID,
	}
}

func (d *Directory) ResolveRole(ctx context.Context, roleID string) (*entity.Role, error) {
	if roleID == "" {
		return nil, fmt.Errorf("empty role id: %w", domain.ErrUnresolvedReference)
	}

	role, err := d.state.Role(d.guildID, roleID)
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return nil, fmt.Errorf("role %s not found in guild %s: %w", roleID, d.guildID, domain.ErrUnresolvedReference)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up role %s: %w", roleID, err)
	}

	return &entity.Role{
		ID:      role.ID,
		Name:    role.Name,
		Mention: role.Mention(),
	}, nil
}

// ResolveChannel only accepts channels of this guild.
func (d *Directory) ResolveChannel(ctx context.Context, channelID string) (*entity.Channel, error) {
	if channelID == "" {
		return nil, fmt.Errorf("empty channel id: %w", domain.ErrUnresolvedReference)
	}

	channel, err := d.state.Channel(channelID)
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return nil, fmt.Errorf("channel %s not found: %w", channelID, domain.ErrUnresolvedReference)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up channel %s: %w", channelID, err)
	}

	if channel.GuildID != d.guildID {
		return nil, fmt.Errorf("channel %s belongs to guild %s: %w", channelID, channel.GuildID, domain.ErrUnresolvedReference)
	}

	return &entity.Channel{
		ID:   channel.ID,
		Name: channel.Name,
	}, nil
}
