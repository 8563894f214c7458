package handler

import (
	"go-product-catalog/internal/middleware"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Summary    *SummaryHandler
	Privileges repository.PrivilegeRepository
}

// RegisterRoutes mounts the admin API under /api/v1. requireAuth guards every
// route except the auth endpoints.
func RegisterRoutes(app *fiber.App, h Handlers, requireAuth fiber.Handler) {
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Post("/validate-token", h.Auth.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", requireAuth)
	view := middleware.RequirePrivilege(model.PrivilegeCatalogView)
	write := middleware.RequirePrivilege(model.PrivilegeCatalogWrite)
	del := middleware.RequirePrivilege(model.PrivilegeCatalogDelete)

	protected.Get("/summary", middleware.RequireAnyPrivilege(model.PrivilegeCatalogView, model.PrivilegeCatalogWrite), h.Summary.GetSummary)
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := h.Privileges.FindAll(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch privileges"})
		}
		return c.JSON(privileges)
	})

	c := h.Catalog

	protected.Get("/categories", view, c.ListCategories)
	protected.Get("/categories/tree", view, c.CategoryTree)
	protected.Get("/categories/:id", view, c.GetCategory)
	protected.Get("/categories/:id/children", view, c.CategoryChildren)
	protected.Post("/categories", write, c.CreateCategory)
	protected.Put("/categories/:id", write, c.UpdateCategory)
	protected.Delete("/categories/:id", del, c.DeleteCategory)

	protected.Get("/seasonal-events", view, c.ListSeasonalEvents)
	protected.Get("/seasonal-events/:id", view, c.GetSeasonalEvent)
	protected.Post("/seasonal-events", write, c.CreateSeasonalEvent)
	protected.Put("/seasonal-events/:id", write, c.UpdateSeasonalEvent)
	protected.Delete("/seasonal-events/:id", del, c.DeleteSeasonalEvent)

	protected.Get("/attributes", view, c.ListAttributes)
	protected.Get("/attributes/:id", view, c.GetAttribute)
	protected.Post("/attributes", write, c.CreateAttribute)
	protected.Put("/attributes/:id", write, c.UpdateAttribute)
	protected.Delete("/attributes/:id", del, c.DeleteAttribute)
	protected.Post("/attributes/:id/values", write, c.AddAttributeValue)
	protected.Put("/attribute-values/:id", write, c.UpdateAttributeValue)
	protected.Delete("/attribute-values/:id", del, c.DeleteAttributeValue)

	protected.Get("/product-types", view, c.ListProductTypes)
	protected.Get("/product-types/:id", view, c.GetProductType)
	protected.Post("/product-types", write, c.CreateProductType)
	protected.Put("/product-types/:id", write, c.UpdateProductType)
	protected.Delete("/product-types/:id", del, c.DeleteProductType)

	protected.Get("/products", view, c.ListProducts)
	protected.Get("/products/slug/:slug", view, c.GetProductBySlug)
	protected.Get("/products/:id", view, c.GetProduct)
	protected.Post("/products", write, c.CreateProduct)
	protected.Put("/products/:id", write, c.UpdateProduct)
	protected.Delete("/products/:id", del, c.DeleteProduct)
	protected.Put("/products/:id/product-types/:typeId", write, c.AddProductType)
	protected.Delete("/products/:id/product-types/:typeId", write, c.RemoveProductType)
	protected.Get("/products/:id/lines", view, c.ListProductLines)
	protected.Post("/products/:id/lines", write, c.CreateProductLine)
	protected.Get("/products/:id/stock-control", view, c.GetStockControl)
	protected.Post("/products/:id/stock-control", write, c.CreateStockControl)
	protected.Put("/products/:id/stock-control", write, c.UpdateStockControl)
	protected.Delete("/products/:id/stock-control", del, c.DeleteStockControl)

	protected.Get("/product-lines/:id", view, c.GetProductLine)
	protected.Put("/product-lines/:id", write, c.UpdateProductLine)
	protected.Delete("/product-lines/:id", del, c.DeleteProductLine)
	protected.Put("/product-lines/:id/attribute-values/:valueId", write, c.AddLineAttributeValue)
	protected.Delete("/product-lines/:id/attribute-values/:valueId", write, c.RemoveLineAttributeValue)
	protected.Get("/product-lines/:id/images", view, c.ListProductImages)
	protected.Post("/product-lines/:id/images", write, c.AddProductImage)

	protected.Put("/product-images/:id", write, c.UpdateProductImage)
	protected.Delete("/product-images/:id", del, c.DeleteProductImage)
}
