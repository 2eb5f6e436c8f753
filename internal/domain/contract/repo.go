package contract

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Campaign() CampaignRepo
	Oneshot() OneshotRepo
}

// CampaignRepo defines the contract for campaign repository
type CampaignRepo interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	GetByID(ctx context.Context, id int64) (*entity.Campaign, error)
	List(ctx context.Context) (map[int64]*entity.Campaign, error)
	SearchByName(ctx context.Context, fragment string) ([]*entity.Campaign, error)
	Update(ctx context.Context, campaign *entity.Campaign) error
	Delete(ctx context.Context, id int64) error
}

// OneshotRepo defines the contract for oneshot repository
type OneshotRepo interface {
	Create(ctx context.Context, oneshot *entity.Oneshot) error
	GetByID(ctx context.Context, id int64) (*entity.Oneshot, error)
	List(ctx context.Context) (map[int64]*entity.Oneshot, error)
	SearchByName(ctx context.Context, fragment string) ([]*entity.Oneshot, error)
	Update(ctx context.Context, oneshot *entity.Oneshot) error
	Delete(ctx context.Context, id int64) error
}
