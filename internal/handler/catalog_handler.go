package handler

import (
	"time"

	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service service.CatalogService
	media   *MediaStore
	log     *zap.Logger
}

func NewCatalogHandler(s service.CatalogService, media *MediaStore, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{service: s, media: media, log: log}
}

// GET /api/v1/categories?parent_id=&roots=&active=
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	parentID, err := queryID(c, "parent_id")
	if err != nil {
		return badRequest(c, "Invalid parent_id")
	}
	filter := repository.CategoryFilter{
		ParentID:   parentID,
		RootsOnly:  c.QueryBool("roots", false),
		ActiveOnly: c.QueryBool("active", false),
	}
	categories, err := h.service.ListCategories(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) CategoryTree(c *fiber.Ctx) error {
	tree, err := h.service.CategoryTree(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(tree)
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}
	category, err := h.service.GetCategory(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(category)
}

func (h *CatalogHandler) CategoryChildren(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}
	children, err := h.service.CategoryChildren(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(children)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	category, err := h.service.CreateCategory(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}
	var req service.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	category, err := h.service.UpdateCategory(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(category)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/seasonal-events?active_at=2026-12-01T00:00:00Z
func (h *CatalogHandler) ListSeasonalEvents(c *fiber.Ctx) error {
	if raw := c.Query("active_at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "active_at must be an RFC 3339 timestamp")
		}
		events, err := h.service.ActiveSeasonalEvents(c.UserContext(), at.UTC())
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(events)
	}
	events, err := h.service.ListSeasonalEvents(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(events)
}

func (h *CatalogHandler) GetSeasonalEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid seasonal event ID")
	}
	event, err := h.service.GetSeasonalEvent(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *CatalogHandler) CreateSeasonalEvent(c *fiber.Ctx) error {
	var req service.SeasonalEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	event, err := h.service.CreateSeasonalEvent(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *CatalogHandler) UpdateSeasonalEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid seasonal event ID")
	}
	var req service.SeasonalEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	event, err := h.service.UpdateSeasonalEvent(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *CatalogHandler) DeleteSeasonalEvent(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid seasonal event ID")
	}
	if err := h.service.DeleteSeasonalEvent(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) ListAttributes(c *fiber.Ctx) error {
	attributes, err := h.service.ListAttributes(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(attributes)
}

func (h *CatalogHandler) GetAttribute(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid attribute ID")
	}
	attribute, err := h.service.GetAttribute(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(attribute)
}

func (h *CatalogHandler) CreateAttribute(c *fiber.Ctx) error {
	var req service.AttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	attribute, err := h.service.CreateAttribute(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(attribute)
}

func (h *CatalogHandler) UpdateAttribute(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid attribute ID")
	}
	var req service.AttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	attribute, err := h.service.UpdateAttribute(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(attribute)
}

func (h *CatalogHandler) DeleteAttribute(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid attribute ID")
	}
	if err := h.service.DeleteAttribute(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/v1/attributes/:id/values
func (h *CatalogHandler) AddAttributeValue(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid attribute ID")
	}
	var req service.AttributeValueRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	value, err := h.service.AddAttributeValue(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(value)
}

func (h *CatalogHandler) UpdateAttributeValue(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid attribute value ID")
	}
	var req service.AttributeValueRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	value, err := h.service.UpdateAttributeValue(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(value)
}

func (h *CatalogHandler) DeleteAttributeValue(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid attribute value ID")
	}
	if err := h.service.DeleteAttributeValue(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) ListProductTypes(c *fiber.Ctx) error {
	types, err := h.service.ListProductTypes(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(types)
}

func (h *CatalogHandler) GetProductType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product type ID")
	}
	productType, err := h.service.GetProductType(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(productType)
}

func (h *CatalogHandler) CreateProductType(c *fiber.Ctx) error {
	var req service.ProductTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	productType, err := h.service.CreateProductType(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(productType)
}

func (h *CatalogHandler) UpdateProductType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product type ID")
	}
	var req service.ProductTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	productType, err := h.service.UpdateProductType(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(productType)
}

func (h *CatalogHandler) DeleteProductType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product type ID")
	}
	if err := h.service.DeleteProductType(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
