package model

import "time"

// SeasonalEvent groups products around a dated campaign (e.g. "Black Friday").
// StartDate <= EndDate is expected but not enforced by the table.
type SeasonalEvent struct {
	CatalogModel
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
}

func (SeasonalEvent) TableName() string {
	return "seasonal_events"
}

// ActiveAt reports whether t falls inside the event window, bounds included.
func (e *SeasonalEvent) ActiveAt(t time.Time) bool {
	return !t.Before(e.StartDate) && !t.After(e.EndDate)
}
