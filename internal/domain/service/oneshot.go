package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type oneshotService struct {
	dm     contract.DataManager
	policy contract.AccessPolicy
	source *time.Location
	log    *zap.SugaredLogger
	now    func() time.Time
}

func newOneshot(dm contract.DataManager, policy contract.AccessPolicy, source *time.Location, log *zap.SugaredLogger) *oneshotService {
	return &oneshotService{
		dm:     dm,
		policy: policy,
		source: source,
		log:    log,
		now:    time.Now,
	}
}

func (s *oneshotService) Add(ctx context.Context, actor entity.Actor, name, description string) (*entity.Oneshot, error) {
	name, err := requireName(name, "oneshot")
	if err != nil {
		return nil, err
	}

	now := s.now()
	oneshot := &entity.Oneshot{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatorID:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.dm.Oneshot().Create(ctx, oneshot); err != nil {
		return nil, fmt.Errorf("failed to create oneshot: %w", err)
	}

	s.log.Infow("oneshot added", "id", oneshot.ID, "name", oneshot.Name, "user", actor.UserID)
	return oneshot, nil
}

func (s *oneshotService) List(ctx context.Context) ([]*entity.Oneshot, error) {
	oneshots, err := s.dm.Oneshot().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list oneshots: %w", err)
	}

	list := make([]*entity.Oneshot, 0, len(oneshots))
	for _, oneshot := range oneshots {
		list = append(list, oneshot)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	return list, nil
}

func (s *oneshotService) Details(ctx context.Context, identifier string) ([]*entity.Oneshot, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: oneshot id or name is required", domain.ErrInvalidArgument)
	}

	if id, ok := parseID(identifier); ok {
		oneshot, err := s.dm.Oneshot().GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get oneshot: %w", err)
		}
		if oneshot == nil {
			return nil, fmt.Errorf("oneshot %d: %w", id, domain.ErrNotFound)
		}
		return []*entity.Oneshot{oneshot}, nil
	}

	oneshots, err := s.dm.Oneshot().SearchByName(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to search oneshots: %w", err)
	}
	if len(oneshots) == 0 {
		return nil, fmt.Errorf("oneshot matching %q: %w", identifier, domain.ErrNotFound)
	}

	return oneshots, nil
}

func (s *oneshotService) Delete(ctx context.Context, actor entity.Actor, name string, id int64) (*entity.Oneshot, error) {
	var deleted *entity.Oneshot

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		oneshot, err := s.getForChange(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		if !strings.EqualFold(strings.TrimSpace(name), oneshot.Name) {
			return fmt.Errorf("oneshot %d is called %q: %w", id, oneshot.Name, domain.ErrNameMismatch)
		}

		if err := tx.Oneshot().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete oneshot: %w", err)
		}

		deleted = oneshot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("oneshot deleted", "id", deleted.ID, "name", deleted.Name, "user", actor.UserID)
	return deleted, nil
}

func (s *oneshotService) UpdateDescription(ctx context.Context, actor entity.Actor, id int64, description string) (*entity.Oneshot, error) {
	description = strings.TrimSpace(description)

	oneshot, err := s.update(ctx, actor, id, func(o *entity.Oneshot) {
		o.Description = description
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("oneshot description updated", "id", oneshot.ID, "name", oneshot.Name, "description", description)
	return oneshot, nil
}

func (s *oneshotService) UpdateTime(ctx context.Context, actor entity.Actor, id int64, when string) (*entity.Oneshot, error) {
	when = strings.TrimSpace(when)
	if strings.EqualFold(when, domain.ClearValue) {
		when = ""
	} else {
		normalized, err := NormalizeSessionTime(when, s.source)
		if err != nil {
			return nil, err
		}
		when = normalized
	}

	oneshot, err := s.update(ctx, actor, id, func(o *entity.Oneshot) {
		o.Time = when
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("oneshot time updated", "id", oneshot.ID, "name", oneshot.Name, "time", when)
	return oneshot, nil
}

func (s *oneshotService) UpdateRole(ctx context.Context, actor entity.Actor, id int64, roleID string) (*entity.Oneshot, error) {
	roleID, err := optionalReference(roleID, "role")
	if err != nil {
		return nil, err
	}

	oneshot, err := s.update(ctx, actor, id, func(o *entity.Oneshot) {
		o.RoleID = roleID
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("oneshot role updated", "id", oneshot.ID, "name", oneshot.Name, "role", roleID)
	return oneshot, nil
}

func (s *oneshotService) UpdateChannel(ctx context.Context, actor entity.Actor, id int64, channelID string) (*entity.Oneshot, error) {
	channelID, err := optionalReference(channelID, "channel")
	if err != nil {
		return nil, err
	}

	oneshot, err := s.update(ctx, actor, id, func(o *entity.Oneshot) {
		o.ChannelID = channelID
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("oneshot channel updated", "id", oneshot.ID, "name", oneshot.Name, "channel", channelID)
	return oneshot, nil
}

func (s *oneshotService) update(ctx context.Context, actor entity.Actor, id int64, mutate func(o *entity.Oneshot)) (*entity.Oneshot, error) {
	var updated *entity.Oneshot

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		oneshot, err := s.getForChange(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		mutate(oneshot)
		oneshot.UpdatedAt = s.now()

		if err := tx.Oneshot().Update(ctx, oneshot); err != nil {
			return fmt.Errorf("failed to update oneshot: %w", err)
		}

		updated = oneshot
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *oneshotService) getForChange(ctx context.Context, tx contract.DataManager, actor entity.Actor, id int64) (*entity.Oneshot, error) {
	oneshot, err := tx.Oneshot().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get oneshot: %w", err)
	}
	if oneshot == nil {
		return nil, fmt.Errorf("oneshot %d: %w", id, domain.ErrNotFound)
	}

	if !s.policy.CanModify(actor, oneshot.CreatorID) {
		return nil, fmt.Errorf("oneshot %d belongs to another user: %w", id, domain.ErrForbidden)
	}

	return oneshot, nil
}
