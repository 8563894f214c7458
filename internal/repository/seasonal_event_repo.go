package repository

import (
	"context"
	"time"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeasonalEventRepository interface {
	Create(ctx context.Context, event *model.SeasonalEvent) error
	FindByID(ctx context.Context, id uint64) (*model.SeasonalEvent, error)
	FindAll(ctx context.Context) ([]model.SeasonalEvent, error)
	FindActiveAt(ctx context.Context, at time.Time) ([]model.SeasonalEvent, error)
	Update(ctx context.Context, event *model.SeasonalEvent) error
	Delete(ctx context.Context, id uint64) error
}

type seasonalEventRepo struct {
	db *gorm.DB
}

func NewSeasonalEventRepo(db *gorm.DB) SeasonalEventRepository {
	return &seasonalEventRepo{db}
}

func (r *seasonalEventRepo) Create(ctx context.Context, event *model.SeasonalEvent) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(event).Error)
}

func (r *seasonalEventRepo) FindByID(ctx context.Context, id uint64) (*model.SeasonalEvent, error) {
	var event model.SeasonalEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

func (r *seasonalEventRepo) FindAll(ctx context.Context) ([]model.SeasonalEvent, error) {
	var events []model.SeasonalEvent
	err := r.db.WithContext(ctx).Order("start_date ASC, id ASC").Find(&events).Error
	return events, translateError(err)
}

// FindActiveAt returns the events whose window contains at, bounds included.
func (r *seasonalEventRepo) FindActiveAt(ctx context.Context, at time.Time) ([]model.SeasonalEvent, error) {
	var events []model.SeasonalEvent
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", at, at).
		Order("start_date ASC, id ASC").
		Find(&events).Error
	return events, translateError(err)
}

func (r *seasonalEventRepo) Update(ctx context.Context, event *model.SeasonalEvent) error {
	res := r.db.WithContext(ctx).Model(&model.SeasonalEvent{}).Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":       event.Name,
			"start_date": event.StartDate,
			"end_date":   event.EndDate,
		})
	return translateError(notFoundIfNoRows(res, "seasonal event", event.ID))
}

// Delete removes an event; products referencing it get a NULL seasonal_event_id.
func (r *seasonalEventRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.SeasonalEvent{}, id)
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	return notFoundIfNoRows(res, "seasonal event", id)
}
