package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

const campaignColumns = `id, name, description, creator_id, session_time, role_id, channel_id,
	extra_notification, created_at, updated_at`

type campaignRepository struct {
	db dbConn
}

func newCampaignRepository(db dbConn) contract.CampaignRepo {
	return &campaignRepository{db: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row scanner) (*entity.Campaign, error) {
	campaign := &entity.Campaign{}
	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Description,
		&campaign.CreatorID,
		&campaign.SessionTime,
		&campaign.RoleID,
		&campaign.ChannelID,
		&campaign.ExtraNotification,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	return campaign, err
}

func (r *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (name, description, creator_id, session_time, role_id, channel_id,
			extra_notification, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		campaign.Name,
		campaign.Description,
		campaign.CreatorID,
		campaign.SessionTime,
		campaign.RoleID,
		campaign.ChannelID,
		campaign.ExtraNotification,
		campaign.CreatedAt,
		campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	campaign.ID = id
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int64) (*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = ?`

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context) (map[int64]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make(map[int64]*entity.Campaign)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns[campaign.ID] = campaign
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE instr(lower(name), ?) > 0 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, strings.ToLower(fragment))
	if err != nil {
		return nil, fmt.Errorf("failed to search campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*entity.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	query := `
		UPDATE campaigns SET
			name = ?,
			description = ?,
			session_time = ?,
			role_id = ?,
			channel_id = ?,
			extra_notification = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		campaign.Name,
		campaign.Description,
		campaign.SessionTime,
		campaign.RoleID,
		campaign.ChannelID,
		campaign.ExtraNotification,
		campaign.UpdatedAt,
		campaign.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	return requireAffected(result, "campaign", campaign.ID)
}

func (r *campaignRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM campaigns WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	return requireAffected(result, "campaign", id)
}

func requireAffected(result sql.Result, kind string, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}
