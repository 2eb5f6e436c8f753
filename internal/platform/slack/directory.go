package slack

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// groupsTTL is how long a user group listing is reused. usergroups.list is a Tier 2 method,
// so every role of a tick and every command inside the window share one call.
const groupsTTL = 30 * time.Second

// Directory resolves references inside the workspace the bot token belongs to.
// Roles are user groups.
type Directory struct {
	client contract.SlackClient
	now    func() time.Time

	mu        sync.Mutex
	groups    []slack.UserGroup
	fetchedAt time.Time
}

func NewDirectory(client contract.SlackClient) *Directory {
	return &Directory{client: client, now: time.Now}
}

// userGroups lists the enabled user groups with their members. Failed calls are not cached.
func (d *Directory) userGroups(ctx context.Context) ([]slack.UserGroup, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.groups != nil && d.now().Sub(d.fetchedAt) < groupsTTL {
		return d.groups, nil
	}

	groups, err := d.client.GetUserGroupsContext(ctx, slack.GetUserGroupsOptionIncludeUsers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list user groups: %w", err)
	}
	if groups == nil {
		groups = []slack.UserGroup{}
	}

	d.groups = groups
	d.fetchedAt = d.now()
	return groups, nil
}

func (d *Directory) ResolveRole(ctx context.Context, roleID string) (*entity.Role, error) {
	if roleID == "" {
		return nil, fmt.Errorf("empty user group id: %w", domain.ErrUnresolvedReference)
	}

	// disabled groups are not returned
	groups, err := d.userGroups(ctx)
	if err != nil {
		return nil, err
	}

	for _, group := range groups {
		if group.ID == roleID {
			return &entity.Role{
				ID:      group.ID,
				Name:    group.Handle,
				Mention: "<!subteam^" + group.ID + ">",
			}, nil
		}
	}

	return nil, fmt.Errorf("user group %s: %w", roleID, domain.ErrUnresolvedReference)
}

func (d *Directory) ResolveChannel(ctx context.Context, channelID string) (*entity.Channel, error) {
	if channelID == "" {
		return nil, fmt.Errorf("empty channel id: %w", domain.ErrUnresolvedReference)
	}

	channel, err := d.client.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{ChannelID: channelID})
	if err != nil {
		var slackErr slack.SlackErrorResponse
		if errors.As(err, &slackErr) && slackErr.Err == "channel_not_found" {
			return nil, fmt.Errorf("channel %s: %w", channelID, domain.ErrUnresolvedReference)
		}
		return nil, fmt.Errorf("failed to get channel %s: %w", channelID, err)
	}

	if channel.IsArchived {
		return nil, fmt.Errorf("channel %s is archived: %w", channelID, domain.ErrUnresolvedReference)
	}

	return &entity.Channel{
		ID:   channel.ID,
		Name: channel.Name,
	}, nil
}

// UserRoles returns the ids of the user groups userID is a member of.
func (d *Directory) UserRoles(ctx context.Context, userID string) ([]string, error) {
	groups, err := d.userGroups(ctx)
	if err != nil {
		return nil, err
	}

	var roles []string
	for _, group := range groups {
		for _, member := range group.Users {
			if member == userID {
				roles = append(roles, group.ID)
				break
			}
		}
	}

	return roles, nil
}
