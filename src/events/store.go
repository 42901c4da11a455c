// Package events persists show listings and the local cache of reconciled
// theater applications.
package events

import (
	"context"
	"errors"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/common"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEventNotFound = errors.New("events: event not found")

// boundQuery derives a deadline from the configuration carried in task
// contexts. Contexts without one pass through unchanged.
func boundQuery(ctx context.Context) (context.Context, context.CancelFunc) {
	cfg := common.GetConfig(ctx)
	if cfg == nil || cfg.Database.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, cfg.Database.QueryTimeout)
}

type Store struct {
	log *logrus.Entry
	db  *gorm.DB
}

func NewStore(db *gorm.DB) (self *Store) {
	self = new(Store)
	self.log = logger.NewSublogger("events")
	self.db = db
	return
}

func (self *Store) CreateEvent(ctx context.Context, event *model.Event) (err error) {
	return self.db.WithContext(ctx).Create(event).Error
}

func (self *Store) GetEvent(ctx context.Context, id uint) (out *model.Event, err error) {
	out = new(model.Event)
	err = self.db.WithContext(ctx).First(out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return
}

// ListEvents returns active events, newest first. An empty applicationID
// matches every venue.
func (self *Store) ListEvents(ctx context.Context, applicationID string, limit, offset int) (out []model.Event, err error) {
	query := self.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)

	if applicationID != "" {
		query = query.Where("application_id = ?", applicationID)
	}

	err = query.Find(&out).Error
	return
}

func (self *Store) UpdateEvent(ctx context.Context, event *model.Event) (err error) {
	result := self.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", event.ID).
		Updates(event)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// DeleteEvent deactivates the listing, rows are never removed
func (self *Store) DeleteEvent(ctx context.Context, id uint) (err error) {
	result := self.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// UpsertApplicationRecords replaces the cached rows with freshly reconciled
// state, keyed by application id. Callers hand in long-lived task contexts,
// so the write is bounded with the configured query timeout.
func (self *Store) UpsertApplicationRecords(ctx context.Context, records []model.ApplicationRecord) (err error) {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := boundQuery(ctx)
	defer cancel()

	return self.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "application_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"owner_identity", "owner_wallet", "document_hash", "status",
				"display_status", "transaction_id", "submitted_at",
				"review_notes", "stale", "updated_at",
			}),
		}).
		Create(&records).Error
}

func (self *Store) ListApplicationRecords(ctx context.Context) (out []model.ApplicationRecord, err error) {
	err = self.db.WithContext(ctx).
		Order("application_id ASC").
		Find(&out).Error
	return
}
