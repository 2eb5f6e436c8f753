package contract

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

type CampaignService interface {
	Add(ctx context.Context, actor entity.Actor, name, description string) (*entity.Campaign, error)
	List(ctx context.Context) ([]*entity.Campaign, error)
	Details(ctx context.Context, identifier string) ([]*entity.Campaign, error)
	Delete(ctx context.Context, actor entity.Actor, name string, id int64) (*entity.Campaign, error)
	UpdateDescription(ctx context.Context, actor entity.Actor, id int64, description string) (*entity.Campaign, error)
	UpdateSession(ctx context.Context, actor entity.Actor, id int64, session string) (*entity.Campaign, error)
	UpdateRole(ctx context.Context, actor entity.Actor, id int64, roleID string) (*entity.Campaign, error)
	UpdateChannel(ctx context.Context, actor entity.Actor, id int64, channelID string) (*entity.Campaign, error)
	UpdateExtraNotification(ctx context.Context, actor entity.Actor, id int64, enabled bool) (*entity.Campaign, error)
}

type OneshotService interface {
	Add(ctx context.Context, actor entity.Actor, name, description string) (*entity.Oneshot, error)
	List(ctx context.Context) ([]*entity.Oneshot, error)
	Details(ctx context.Context, identifier string) ([]*entity.Oneshot, error)
	Delete(ctx context.Context, actor entity.Actor, name string, id int64) (*entity.Oneshot, error)
	UpdateDescription(ctx context.Context, actor entity.Actor, id int64, description string) (*entity.Oneshot, error)
	UpdateTime(ctx context.Context, actor entity.Actor, id int64, when string) (*entity.Oneshot, error)
	UpdateRole(ctx context.Context, actor entity.Actor, id int64, roleID string) (*entity.Oneshot, error)
	UpdateChannel(ctx context.Context, actor entity.Actor, id int64, channelID string) (*entity.Oneshot, error)
}

// AccessPolicy decides who may use and modify events.
type AccessPolicy interface {
	CanUse(actor entity.Actor, kind entity.Kind) bool
	CanModify(actor entity.Actor, creatorID string) bool
}

// TimeMatcher decides whether now crosses a reminder threshold for an event starting at start.
type TimeMatcher interface {
	OneHourBefore(now, start time.Time) bool
	SameDayMorning(now, start time.Time) bool
}

// ReminderScheduler is the periodic reminder loop of one community.
type ReminderScheduler interface {
	Start() error
	Stop()
}
