package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

const oneshotColumns = `id, name, description, creator_id, start_time, role_id, channel_id, created_at, updated_at`

type oneshotRepository struct {
	db dbConn
}

func newOneshotRepository(db dbConn) contract.OneshotRepo {
	return &oneshotRepository{db: db}
}

func scanOneshot(row scanner) (*entity.Oneshot, error) {
	oneshot := &entity.Oneshot{}
	err := row.Scan(
		&oneshot.ID,
		&oneshot.Name,
		&oneshot.Description,
		&oneshot.CreatorID,
		&oneshot.Time,
		&oneshot.RoleID,
		&oneshot.ChannelID,
		&oneshot.CreatedAt,
		&oneshot.UpdatedAt,
	)
	return oneshot, err
}

func (r *oneshotRepository) Create(ctx context.Context, oneshot *entity.Oneshot) error {
	query := `
		INSERT INTO oneshots (name, description, creator_id, start_time, role_id, channel_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		oneshot.Name,
		oneshot.Description,
		oneshot.CreatorID,
		oneshot.Time,
		oneshot.RoleID,
		oneshot.ChannelID,
		oneshot.CreatedAt,
		oneshot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create oneshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	oneshot.ID = id
	return nil
}

func (r *oneshotRepository) GetByID(ctx context.Context, id int64) (*entity.Oneshot, error) {
	query := `SELECT ` + oneshotColumns + ` FROM oneshots WHERE id = ?`

	oneshot, err := scanOneshot(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get oneshot: %w", err)
	}

	return oneshot, nil
}

func (r *oneshotRepository) List(ctx context.Context) (map[int64]*entity.Oneshot, error) {
	query := `SELECT ` + oneshotColumns + ` FROM oneshots`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list oneshots: %w", err)
	}
	defer rows.Close()

	oneshots := make(map[int64]*entity.Oneshot)
	for rows.Next() {
		oneshot, err := scanOneshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan oneshot: %w", err)
		}
		oneshots[oneshot.ID] = oneshot
	}

	return oneshots, rows.Err()
}

func (r *oneshotRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Oneshot, error) {
	query := `SELECT ` + oneshotColumns + ` FROM oneshots WHERE instr(lower(name), ?) > 0 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, strings.ToLower(fragment))
	if err != nil {
		return nil, fmt.Errorf("failed to search oneshots: %w", err)
	}
	defer rows.Close()

	var oneshots []*entity.Oneshot
	for rows.Next() {
		oneshot, err := scanOneshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan oneshot: %w", err)
		}
		oneshots = append(oneshots, oneshot)
	}

	return oneshots, rows.Err()
}

func (r *oneshotRepository) Update(ctx context.Context, oneshot *entity.Oneshot) error {
	query := `
		UPDATE oneshots SET
			name = ?,
			description = ?,
			start_time = ?,
			role_id = ?,
			channel_id = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		oneshot.Name,
		oneshot.Description,
		oneshot.Time,
		oneshot.RoleID,
		oneshot.ChannelID,
		oneshot.UpdatedAt,
		oneshot.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update oneshot: %w", err)
	}

	return requireAffected(result, "oneshot", oneshot.ID)
}

func (r *oneshotRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM oneshots WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete oneshot: %w", err)
	}

	return requireAffected(result, "oneshot", id)
}
