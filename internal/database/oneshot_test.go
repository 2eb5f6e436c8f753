package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneshotRepository_CRUD(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newOneshotRepository(db.conn)

	oneshot := &entity.Oneshot{
		Name:      "Tomb of Horrors",
		CreatorID: "U1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, oneshot))
	assert.Equal(t, int64(1), oneshot.ID)

	oneshot.Time = "2024-05-01 03:00PM"
	oneshot.RoleID = "R1"
	oneshot.ChannelID = "C1"
	require.NoError(t, repo.Update(ctx, oneshot))

	found, err := repo.GetByID(ctx, oneshot.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "2024-05-01 03:00PM", found.Time)
	assert.True(t, found.Schedule().Scheduled())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, oneshot.ID)

	matches, err := repo.SearchByName(ctx, "TOMB")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	require.NoError(t, repo.Delete(ctx, oneshot.ID))
	assert.ErrorIs(t, repo.Delete(ctx, oneshot.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, oneshot), domain.ErrNotFound)
}
