package contract

//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=../../../mocks/platform.go -package=mocks

import (
	"context"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// Directory resolves stored role and channel ids inside one community.
// Missing references return an error wrapping domain.ErrUnresolvedReference.
type Directory interface {
	ResolveRole(ctx context.Context, roleID string) (*entity.Role, error)
	ResolveChannel(ctx context.Context, channelID string) (*entity.Channel, error)
}

// Notifier delivers reminders to the chat platform.
type Notifier interface {
	Send(ctx context.Context, reminder *entity.Reminder) error
}

// RoleLookup returns the role ids a user holds. Slack has no roles on messages, so user
// groups are looked up per command.
type RoleLookup interface {
	UserRoles(ctx context.Context, userID string) ([]string, error)
}

// SlackClient defines the Slack operations the bot uses.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)
	GetUserGroupsContext(ctx context.Context, options ...slack.GetUserGroupsOption) ([]slack.UserGroup, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
