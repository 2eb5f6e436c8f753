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

type oneshotRepository struct {
	db access
}

func newOneshotRepository(db access) contract.OneshotRepo {
	return &oneshotRepository{db: db}
}

func (r *oneshotRepository) Create(ctx context.Context, oneshot *entity.Oneshot) error {
	var id int64

	err := r.db.write(func(doc *document) error {
		doc.LastOneshotID++
		id = doc.LastOneshotID

		record := oneshotToRecord(oneshot)
		record.ID = id
		doc.Oneshots[key(id)] = record
		return nil
	})
	if err != nil {
		return err
	}

	oneshot.ID = id
	return nil
}

func (r *oneshotRepository) GetByID(ctx context.Context, id int64) (*entity.Oneshot, error) {
	var oneshot *entity.Oneshot

	r.db.read(func(doc *document) {
		if record, ok := doc.Oneshots[key(id)]; ok {
			oneshot = record.toEntity()
		}
	})

	return oneshot, nil
}

func (r *oneshotRepository) List(ctx context.Context) (map[int64]*entity.Oneshot, error) {
	oneshots := make(map[int64]*entity.Oneshot)

	r.db.read(func(doc *document) {
		for _, record := range doc.Oneshots {
			oneshots[record.ID] = record.toEntity()
		}
	})

	return oneshots, nil
}

func (r *oneshotRepository) SearchByName(ctx context.Context, fragment string) ([]*entity.Oneshot, error) {
	fragment = strings.ToLower(fragment)
	var oneshots []*entity.Oneshot

	r.db.read(func(doc *document) {
		for _, record := range doc.Oneshots {
			if strings.Contains(strings.ToLower(record.Name), fragment) {
				oneshots = append(oneshots, record.toEntity())
			}
		}
	})

	sort.Slice(oneshots, func(i, j int) bool { return oneshots[i].ID < oneshots[j].ID })
	return oneshots, nil
}

func (r *oneshotRepository) Update(ctx context.Context, oneshot *entity.Oneshot) error {
	return r.db.write(func(doc *document) error {
		k := key(oneshot.ID)
		if _, ok := doc.Oneshots[k]; !ok {
			return fmt.Errorf("failed to update oneshot %d: %w", oneshot.ID, domain.ErrNotFound)
		}
		doc.Oneshots[k] = oneshotToRecord(oneshot)
		return nil
	})
}

func (r *oneshotRepository) Delete(ctx context.Context, id int64) error {
	return r.db.write(func(doc *document) error {
		k := key(id)
		if _, ok := doc.Oneshots[k]; !ok {
			return fmt.Errorf("failed to delete oneshot %d: %w", id, domain.ErrNotFound)
		}
		delete(doc.Oneshots, k)
		return nil
	})
}
