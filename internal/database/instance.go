package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	campaignRepo contract.CampaignRepo
	oneshotRepo  contract.OneshotRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		campaignRepo: newCampaignRepository(db),
		oneshotRepo:  newOneshotRepository(db),
	}
}

// Campaign returns the campaign repository
func (i *instance) Campaign() contract.CampaignRepo {
	return i.campaignRepo
}

// Oneshot returns the oneshot repository
func (i *instance) Oneshot() contract.OneshotRepo {
	return i.oneshotRepo
}

// WithTransaction executes a function within a database transaction.
// Instances handed to fn have no *DB, so nested calls run inside the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
