package handler

import (
	"errors"
	"strings"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GET /api/v1/products?category_id=&seasonal_event_id=&product_type_id=&stock_status=&active=&q=&offset=&limit=
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var filter repository.ProductFilter
	var err error
	if filter.CategoryID, err = queryID(c, "category_id"); err != nil {
		return badRequest(c, "Invalid category_id")
	}
	if filter.SeasonalEventID, err = queryID(c, "seasonal_event_id"); err != nil {
		return badRequest(c, "Invalid seasonal_event_id")
	}
	if filter.ProductTypeID, err = queryID(c, "product_type_id"); err != nil {
		return badRequest(c, "Invalid product_type_id")
	}
	filter.StockStatus = model.StockStatus(strings.ToUpper(c.Query("stock_status")))
	filter.ActiveOnly = c.QueryBool("active", false)
	filter.Search = strings.TrimSpace(c.Query("q"))

	page, err := h.service.ListProducts(c.UserContext(), filter, c.QueryInt("offset", 0), c.QueryInt("limit", repository.DefaultPageSize))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(product)
}

func (h *CatalogHandler) GetProductBySlug(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(product)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	product, err := h.service.CreateProduct(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	var req service.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(product)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PUT /api/v1/products/:id/product-types/:typeId
func (h *CatalogHandler) AddProductType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	typeID, err := paramID(c, "typeId")
	if err != nil {
		return badRequest(c, "Invalid product type ID")
	}
	if err := h.service.AddProductType(c.UserContext(), id, typeID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) RemoveProductType(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	typeID, err := paramID(c, "typeId")
	if err != nil {
		return badRequest(c, "Invalid product type ID")
	}
	if err := h.service.RemoveProductType(c.UserContext(), id, typeID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/products/:id/lines
func (h *CatalogHandler) ListProductLines(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	lines, err := h.service.ListProductLines(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(lines)
}

// POST /api/v1/products/:id/lines
func (h *CatalogHandler) CreateProductLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	var req service.ProductLineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	line, err := h.service.CreateProductLine(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

func (h *CatalogHandler) GetProductLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product line ID")
	}
	line, err := h.service.GetProductLine(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(line)
}

func (h *CatalogHandler) UpdateProductLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product line ID")
	}
	var req service.ProductLineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	line, err := h.service.UpdateProductLine(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(line)
}

func (h *CatalogHandler) DeleteProductLine(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product line ID")
	}
	if err := h.service.DeleteProductLine(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PUT /api/v1/product-lines/:id/attribute-values/:valueId
func (h *CatalogHandler) AddLineAttributeValue(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product line ID")
	}
	valueID, err := paramID(c, "valueId")
	if err != nil {
		return badRequest(c, "Invalid attribute value ID")
	}
	if err := h.service.AddLineAttributeValue(c.UserContext(), id, valueID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) RemoveLineAttributeValue(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product line ID")
	}
	valueID, err := paramID(c, "valueId")
	if err != nil {
		return badRequest(c, "Invalid attribute value ID")
	}
	if err := h.service.RemoveLineAttributeValue(c.UserContext(), id, valueID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) ListProductImages(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product line ID")
	}
	images, err := h.service.ListProductImages(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(images)
}

// AddProductImage accepts either a multipart upload ("file", "name",
// "alternative_text") or a JSON body pointing at an existing media path.
// POST /api/v1/product-lines/:id/images
func (h *CatalogHandler) AddProductImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product line ID")
	}

	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		var req service.ProductImageRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid JSON")
		}
		image, err := h.service.AddProductImage(c.UserContext(), id, req)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(image)
	}

	if !hasPrivilege(c, model.PrivilegeMediaUpload) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden: requires '" + model.PrivilegeMediaUpload + "' privilege"})
	}
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}
	url, err := h.media.SaveProductImage(c, file)
	if err != nil {
		if errors.Is(err, ErrUnsupportedImage) {
			return badRequest(c, err.Error())
		}
		return respondError(c, h.log, err)
	}

	req := service.ProductImageRequest{
		Name:            c.FormValue("name", file.Filename),
		AlternativeText: c.FormValue("alternative_text"),
		URL:             url,
	}
	image, err := h.service.AddProductImage(c.UserContext(), id, req)
	if err != nil {
		if rmErr := h.media.Remove(url); rmErr != nil {
			h.log.Warn("remove orphaned upload", zap.String("url", url), zap.Error(rmErr))
		}
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

func (h *CatalogHandler) UpdateProductImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product image ID")
	}
	var req service.ProductImageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	image, err := h.service.UpdateProductImage(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(image)
}

func (h *CatalogHandler) DeleteProductImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product image ID")
	}
	if err := h.service.DeleteProductImage(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/products/:id/stock-control
func (h *CatalogHandler) GetStockControl(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	stock, err := h.service.GetStockControl(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stock)
}

func (h *CatalogHandler) CreateStockControl(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	var req service.StockControlRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	stock, err := h.service.CreateStockControl(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

func (h *CatalogHandler) UpdateStockControl(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	var req service.StockControlRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	stock, err := h.service.UpdateStockControl(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stock)
}

func (h *CatalogHandler) DeleteStockControl(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product ID")
	}
	if err := h.service.DeleteStockControl(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func hasPrivilege(c *fiber.Ctx, code string) bool {
	privileges, _ := c.Locals("user_privileges").([]string)
	for _, p := range privileges {
		if p == code {
			return true
		}
	}
	return false
}
