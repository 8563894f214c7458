package service

import (
	"context"
	"time"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher receives a notification after every committed catalog write.
type EventPublisher interface {
	Publish(entity, action string, id uint64)
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const (
	EntityCategory       = "category"
	EntitySeasonalEvent  = "seasonal_event"
	EntityAttribute      = "attribute"
	EntityAttributeValue = "attribute_value"
	EntityProductType    = "product_type"
	EntityProduct        = "product"
	EntityProductLine    = "product_line"
	EntityProductImage   = "product_image"
	EntityStockControl   = "stock_control"
)

type CatalogService interface {
	CreateCategory(ctx context.Context, req CategoryRequest) (*model.Category, error)
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	ListCategories(ctx context.Context, filter repository.CategoryFilter) ([]model.Category, error)
	CategoryChildren(ctx context.Context, id uint64) ([]model.Category, error)
	CategoryTree(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uint64, req CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error

	CreateSeasonalEvent(ctx context.Context, req SeasonalEventRequest) (*model.SeasonalEvent, error)
	GetSeasonalEvent(ctx context.Context, id uint64) (*model.SeasonalEvent, error)
	ListSeasonalEvents(ctx context.Context) ([]model.SeasonalEvent, error)
	ActiveSeasonalEvents(ctx context.Context, at time.Time) ([]model.SeasonalEvent, error)
	UpdateSeasonalEvent(ctx context.Context, id uint64, req SeasonalEventRequest) (*model.SeasonalEvent, error)
	DeleteSeasonalEvent(ctx context.Context, id uint64) error

	CreateAttribute(ctx context.Context, req AttributeRequest) (*model.Attribute, error)
	GetAttribute(ctx context.Context, id uint64) (*model.Attribute, error)
	ListAttributes(ctx context.Context) ([]model.Attribute, error)
	UpdateAttribute(ctx context.Context, id uint64, req AttributeRequest) (*model.Attribute, error)
	DeleteAttribute(ctx context.Context, id uint64) error
	AddAttributeValue(ctx context.Context, attributeID uint64, req AttributeValueRequest) (*model.AttributeValue, error)
	UpdateAttributeValue(ctx context.Context, id uint64, req AttributeValueRequest) (*model.AttributeValue, error)
	DeleteAttributeValue(ctx context.Context, id uint64) error

	CreateProductType(ctx context.Context, req ProductTypeRequest) (*model.ProductType, error)
	GetProductType(ctx context.Context, id uint64) (*model.ProductType, error)
	ListProductTypes(ctx context.Context) ([]model.ProductType, error)
	UpdateProductType(ctx context.Context, id uint64, req ProductTypeRequest) (*model.ProductType, error)
	DeleteProductType(ctx context.Context, id uint64) error

	CreateProduct(ctx context.Context, req ProductRequest) (*model.Product, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter, offset, limit int) (*ProductPage, error)
	UpdateProduct(ctx context.Context, id uint64, req ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	AddProductType(ctx context.Context, productID, productTypeID uint64) error
	RemoveProductType(ctx context.Context, productID, productTypeID uint64) error

	CreateProductLine(ctx context.Context, productID uint64, req ProductLineRequest) (*model.ProductLine, error)
	GetProductLine(ctx context.Context, id uint64) (*model.ProductLine, error)
	ListProductLines(ctx context.Context, productID uint64) ([]model.ProductLine, error)
	UpdateProductLine(ctx context.Context, id uint64, req ProductLineRequest) (*model.ProductLine, error)
	DeleteProductLine(ctx context.Context, id uint64) error
	AddLineAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error
	RemoveLineAttributeValue(ctx context.Context, lineID, attributeValueID uint64) error

	AddProductImage(ctx context.Context, lineID uint64, req ProductImageRequest) (*model.ProductImage, error)
	ListProductImages(ctx context.Context, lineID uint64) ([]model.ProductImage, error)
	UpdateProductImage(ctx context.Context, id uint64, req ProductImageRequest) (*model.ProductImage, error)
	DeleteProductImage(ctx context.Context, id uint64) error

	CreateStockControl(ctx context.Context, productID uint64, req StockControlRequest) (*model.StockControl, error)
	GetStockControl(ctx context.Context, productID uint64) (*model.StockControl, error)
	UpdateStockControl(ctx context.Context, productID uint64, req StockControlRequest) (*model.StockControl, error)
	DeleteStockControl(ctx context.Context, productID uint64) error
}

// catalogRepos is every accessor bound to one *gorm.DB, either the pool or a transaction.
type catalogRepos struct {
	categories    repository.CategoryRepository
	events        repository.SeasonalEventRepository
	attributes    repository.AttributeRepository
	productTypes  repository.ProductTypeRepository
	products      repository.ProductRepository
	lines         repository.ProductLineRepository
	images        repository.ProductImageRepository
	stockControls repository.StockControlRepository
}

func newCatalogRepos(db *gorm.DB) catalogRepos {
	return catalogRepos{
		categories:    repository.NewCategoryRepo(db),
		events:        repository.NewSeasonalEventRepo(db),
		attributes:    repository.NewAttributeRepo(db),
		productTypes:  repository.NewProductTypeRepo(db),
		products:      repository.NewProductRepo(db),
		lines:         repository.NewProductLineRepo(db),
		images:        repository.NewProductImageRepo(db),
		stockControls: repository.NewStockControlRepo(db),
	}
}

type catalogService struct {
	db     *gorm.DB
	repos  catalogRepos
	events EventPublisher
	log    *zap.Logger
}

func NewCatalogService(db *gorm.DB, events EventPublisher, log *zap.Logger) CatalogService {
	return &catalogService{
		db:     db,
		repos:  newCatalogRepos(db),
		events: events,
		log:    log,
	}
}

// inTx runs fn with accessors bound to a single transaction.
func (s *catalogService) inTx(ctx context.Context, fn func(r catalogRepos) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newCatalogRepos(tx))
	})
}

func (s *catalogService) publish(entity, action string, id uint64) {
	s.log.Info("catalog change", zap.String("entity", entity), zap.String("action", action), zap.Uint64("id", id))
	if s.events != nil {
		s.events.Publish(entity, action, id)
	}
}
