package handler

import (
	"errors"
	"strconv"

	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps service and repository errors onto HTTP status codes.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, repository.ErrProtected):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrInvalidReference), errors.Is(err, repository.ErrConstraint):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	log.Error("request failed", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func paramID(c *fiber.Ctx, name string) (uint64, error) {
	return strconv.ParseUint(c.Params(name), 10, 64)
}

// queryID parses an optional numeric query parameter.
func queryID(c *fiber.Ctx, name string) (*uint64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
