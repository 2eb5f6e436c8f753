package slack

import (
	"context"
	"fmt"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

const fallbackLayout = "2006-01-02 03:04PM MST"

type Notifier struct {
	client contract.SlackClient
}

func NewNotifier(client contract.SlackClient) *Notifier {
	return &Notifier{client: client}
}

// Send posts the user group mention with an attachment. Slack formats <!date> tokens in the
// reader's own zone; the fallback is the start time in the zone it was written in.
func (n *Notifier) Send(ctx context.Context, reminder *entity.Reminder) error {
	when := fmt.Sprintf("<!date^%d^{date_short_pretty} at {time}|%s>",
		reminder.StartsAt.Unix(), reminder.StartsAt.Format(fallbackLayout))

	attachment := slack.Attachment{
		Color:    fmt.Sprintf("#%06x", domain.ColorOrange),
		Title:    reminder.Title(),
		Text:     reminder.Body(when),
		Fallback: reminder.Title(),
	}

	_, _, err := n.client.PostMessageContext(ctx, reminder.Channel.ID,
		slack.MsgOptionText(reminder.Role.Mention, false),
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return fmt.Errorf("%w: channel %s: %w", domain.ErrDelivery, reminder.Channel.ID, err)
	}

	return nil
}
