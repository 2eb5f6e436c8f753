package filestore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

type campaignRepository struct {
	db access
}

func newCampaignRepository(db access) contract.CampaignRepo {
	return &campaignRepository{db: db}
}

// Create stores campaign under the next id. The id is handed back only once the write is saved.
func (r *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	var id int64

	err := r.db.write(func(doc *document) error {
		doc.LastCampaignID++
		id = doc.LastCampaignID

		record := campaignToRecord(campaign)
		record.ID = id
		doc.Campaigns[key(id)] = record
		return nil
	})
	if err != nil {
		return err
	}

	campaign.ID = id
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	var campaign *entity.Campaign

	r.db.read(func(doc *document) {
		if record, ok := doc.Campaigns[key(id)]; ok {
			campaign = record.toEntity()
		}
	})

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context) (map[int64]*entity.Campaign, error) {
	campaigns := make(map[int64]*entity.Campaign)

	r.db.read(func(doc *document) {
		for _, record := range doc.Campaigns {
			campaigns[record.ID] = record.toEntity()
		}
	})

	return campaigns, nil
}

func (r *campaignRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Campaign, error) {
	fragment = strings.ToLower(fragment)
	var campaigns []*entity.Campaign

	r.db.read(func(doc *document) {
		for _, record := range doc.Campaigns {
			if strings.Contains(strings.ToLower(record.Name), fragment) {
				campaigns = append(campaigns, record.toEntity())
			}
		}
	})

	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })
	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	return r.db.write(func(doc *document) error {
		k := key(campaign.ID)
		if _, ok := doc.Campaigns[k]; !ok {
			return fmt.Errorf("failed to update campaign %d: %w", campaign.ID, domain.ErrNotFound)
		}
		doc.Campaigns[k] = campaignToRecord(campaign)
		return nil
	})
}

func (r *campaignRepository) Delete(ctx context.Context, id int64) error {
	return r.db.write(func(doc *document) error {
		k := key(id)
		if _, ok := doc.Campaigns[k]; !ok {
			return fmt.Errorf("failed to delete campaign %d: %w", id, domain.ErrNotFound)
		}
		delete(doc.Campaigns, k)
		return nil
	})
}
