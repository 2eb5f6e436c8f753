package filestore

import (
	"context"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
)

// access is how repositories reach the document: locked on the Store, direct inside a transaction.
type access interface {
	read(fn func(doc *document))
	write(fn func(doc *document) error) error
}

// txAccess works on the clone owned by a running transaction.
type txAccess struct {
	doc *document
}

func (a *txAccess) read(fn func(doc *document)) {
	fn(a.doc)
}

func (a *txAccess) write(fn func(doc *document) error) error {
	return fn(a.doc)
}

// instance implements DataManager interface
type instance struct {
	store        *Store
	inTx         bool
	campaignRepo contract.CampaignRepo
	oneshotRepo  contract.OneshotRepo
}

// NewInstance creates a DataManager backed by the JSON file store
func NewInstance(store *Store) contract.DataManager {
	i := repoInstancesWithAccess(store)
	i.store = store
	return i
}

func repoInstancesWithAccess(a access) *instance {
	return &instance{
		campaignRepo: newCampaignRepository(a),
		oneshotRepo:  newOneshotRepository(a),
	}
}

func (i *instance) Campaign() contract.CampaignRepo {
	return i.campaignRepo
}

func (i *instance) Oneshot() contract.OneshotRepo {
	return i.oneshotRepo
}

// WithTransaction runs fn against a private copy of the document holding the write lock.
// The copy is written to disk and swapped in only when fn succeeds.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.inTx {
		return fn(i)
	}

	return i.store.write(func(doc *document) error {
		tx := repoInstancesWithAccess(&txAccess{doc: doc})
		tx.inTx = true
		return fn(tx)
	})
}
