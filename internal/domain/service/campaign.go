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

type campaignService struct {
	dm     contract.DataManager
	policy contract.AccessPolicy
	source *time.Location
	log    *zap.SugaredLogger
	now    func() time.Time
}

func newCampaign(dm contract.DataManager, policy contract.AccessPolicy, source *time.Location, log *zap.SugaredLogger) *campaignService {
	return &campaignService{
		dm:     dm,
		policy: policy,
		source: source,
		log:    log,
		now:    time.Now,
	}
}

func (s *campaignService) Add(ctx context.Context, actor entity.Actor, name, description string) (*entity.Campaign, error) {
	name, err := requireName(name, "campaign")
	if err != nil {
		return nil, err
	}

	now := s.now()
	campaign := &entity.Campaign{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatorID:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.dm.Campaign().Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.log.Infow("campaign added", "id", campaign.ID, "name", campaign.Name, "user", actor.UserID)
	return campaign, nil
}

func (s *campaignService) List(ctx context.Context) ([]*entity.Campaign, error) {
	campaigns, err := s.dm.Campaign().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	list := make([]*entity.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		list = append(list, campaign)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	return list, nil
}

// Details looks a campaign up by id when identifier is numeric, otherwise by name fragment.
func (s *campaignService) Details(ctx context.Context, identifier string) ([]*entity.Campaign, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: campaign id or name is required", domain.ErrInvalidArgument)
	}

	if id, ok := parseID(identifier); ok {
		campaign, err := s.dm.Campaign().GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get campaign: %w", err)
		}
		if campaign == nil {
			return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
		}
		return []*entity.Campaign{campaign}, nil
	}

	campaigns, err := s.dm.Campaign().SearchByName(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to search campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, fmt.Errorf("campaign matching %q: %w", identifier, domain.ErrNotFound)
	}

	return campaigns, nil
}

// Delete removes the campaign. The name has to match as a confirmation; there is no undo.
func (s *campaignService) Delete(ctx context.Context, actor entity.Actor, name string, id int64) (*entity.Campaign, error) {
	var deleted *entity.Campaign

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		campaign, err := s.getForChange(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		if !strings.EqualFold(strings.TrimSpace(name), campaign.Name) {
			return fmt.Errorf("campaign %d is called %q: %w", id, campaign.Name, domain.ErrNameMismatch)
		}

		if err := tx.Campaign().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete campaign: %w", err)
		}

		deleted = campaign
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("campaign deleted", "id", deleted.ID, "name", deleted.Name, "user", actor.UserID)
	return deleted, nil
}

func (s *campaignService) UpdateDescription(ctx context.Context, actor entity.Actor, id int64, description string) (*entity.Campaign, error) {
	description = strings.TrimSpace(description)

	campaign, err := s.update(ctx, actor, id, func(c *entity.Campaign) error {
		c.Description = description
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("campaign description updated", "id", campaign.ID, "name", campaign.Name, "description", description)
	return campaign, nil
}

// UpdateSession sets the next session time, or unschedules the campaign with "clear".
func (s *campaignService) UpdateSession(ctx context.Context, actor entity.Actor, id int64, session string) (*entity.Campaign, error) {
	session = strings.TrimSpace(session)
	if strings.EqualFold(session, domain.ClearValue) {
		session = ""
	} else {
		normalized, err := NormalizeSessionTime(session, s.source)
		if err != nil {
			return nil, err
		}
		session = normalized
	}

	campaign, err := s.update(ctx, actor, id, func(c *entity.Campaign) error {
		c.SessionTime = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("campaign session updated", "id", campaign.ID, "name", campaign.Name, "session", session)
	return campaign, nil
}

func (s *campaignService) UpdateRole(ctx context.Context, actor entity.Actor, id int64, roleID string) (*entity.Campaign, error) {
	roleID, err := optionalReference(roleID, "role")
	if err != nil {
		return nil, err
	}

	campaign, err := s.update(ctx, actor, id, func(c *entity.Campaign) error {
		c.RoleID = roleID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("campaign role updated", "id", campaign.ID, "name", campaign.Name, "role", roleID)
	return campaign, nil
}

func (s *campaignService) UpdateChannel(ctx context.Context, actor entity.Actor, id int64, channelID string) (*entity.Campaign, error) {
	channelID, err := optionalReference(channelID, "channel")
	if err != nil {
		return nil, err
	}

	campaign, err := s.update(ctx, actor, id, func(c *entity.Campaign) error {
		c.ChannelID = channelID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("campaign channel updated", "id", campaign.ID, "name", campaign.Name, "channel", channelID)
	return campaign, nil
}

func (s *campaignService) UpdateExtraNotification(ctx context.Context, actor entity.Actor, id int64, enabled bool) (*entity.Campaign, error) {
	campaign, err := s.update(ctx, actor, id, func(c *entity.Campaign) error {
		c.ExtraNotification = enabled
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("campaign extra notification updated", "id", campaign.ID, "name", campaign.Name, "enabled", enabled)
	return campaign, nil
}

func (s *campaignService) update(ctx context.Context, actor entity.Actor, id int64, mutate func(c *entity.Campaign) error) (*entity.Campaign, error) {
	var updated *entity.Campaign

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		campaign, err := s.getForChange(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		if err := mutate(campaign); err != nil {
			return err
		}
		campaign.UpdatedAt = s.now()

		if err := tx.Campaign().Update(ctx, campaign); err != nil {
			return fmt.Errorf("failed to update campaign: %w", err)
		}

		updated = campaign
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *campaignService) getForChange(ctx context.Context, tx contract.DataManager, actor entity.Actor, id int64) (*entity.Campaign, error) {
	campaign, err := tx.Campaign().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign == nil {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}

	if !s.policy.CanModify(actor, campaign.CreatorID) {
		return nil, fmt.Errorf("campaign %d belongs to another user: %w", id, domain.ErrForbidden)
	}

	return campaign, nil
}
