package service

import (
	"context"
	"time"

	"go-product-catalog/internal/repository"
)

type SummaryService interface {
	GetSummary(ctx context.Context) (*CatalogOverview, error)
}

// CatalogOverview is the catalog summary plus the seasonal events running today.
type CatalogOverview struct {
	*repository.CatalogSummary
	ActiveSeasonalEvents int `json:"active_seasonal_events"`
}

type summaryService struct {
	summaryRepo repository.SummaryRepository
	eventRepo   repository.SeasonalEventRepository
	now         func() time.Time
}

func NewSummaryService(summaryRepo repository.SummaryRepository, eventRepo repository.SeasonalEventRepository) SummaryService {
	return &summaryService{summaryRepo: summaryRepo, eventRepo: eventRepo, now: time.Now}
}

func (s *summaryService) GetSummary(ctx context.Context) (*CatalogOverview, error) {
	stats, err := s.summaryRepo.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.eventRepo.FindActiveAt(ctx, s.now().UTC())
	if err != nil {
		return nil, err
	}
	return &CatalogOverview{CatalogSummary: stats, ActiveSeasonalEvents: len(active)}, nil
}
