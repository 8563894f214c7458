package handler

import (
	"go-product-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	service service.SummaryService
	log     *zap.Logger
}

func NewSummaryHandler(s service.SummaryService, log *zap.Logger) *SummaryHandler {
	return &SummaryHandler{service: s, log: log}
}

// GetSummary returns overview statistics
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	stats, err := h.service.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stats)
}
