package service

import (
	"context"
	"time"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
)

func (s *catalogService) CreateCategory(ctx context.Context, req CategoryRequest) (*model.Category, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	category := &model.Category{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: boolOr(req.IsActive, true),
		ParentID: req.ParentID,
	}
	if err := s.repos.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.publish(EntityCategory, ActionCreated, category.ID)
	return category, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	return s.repos.categories.FindByID(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context, filter repository.CategoryFilter) ([]model.Category, error) {
	return s.repos.categories.FindAll(ctx, filter)
}

func (s *catalogService) CategoryChildren(ctx context.Context, id uint64) ([]model.Category, error) {
	return s.repos.categories.FindChildren(ctx, id)
}

func (s *catalogService) CategoryTree(ctx context.Context) ([]model.Category, error) {
	return s.repos.categories.Tree(ctx)
}

// UpdateCategory replaces the editable fields. An empty slug or a missing
// is_active keeps the stored value.
func (s *catalogService) UpdateCategory(ctx context.Context, id uint64, req CategoryRequest) (*model.Category, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	existing, err := s.repos.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = req.Name
	if req.Slug != "" {
		existing.Slug = req.Slug
	}
	existing.IsActive = boolOr(req.IsActive, existing.IsActive)
	existing.ParentID = req.ParentID
	if err := s.repos.categories.Update(ctx, existing); err != nil {
		return nil, err
	}
	s.publish(EntityCategory, ActionUpdated, id)
	return s.repos.categories.FindByID(ctx, id)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uint64) error {
	if err := s.repos.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EntityCategory, ActionDeleted, id)
	return nil
}

func (s *catalogService) CreateSeasonalEvent(ctx context.Context, req SeasonalEventRequest) (*model.SeasonalEvent, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	event := &model.SeasonalEvent{Name: req.Name, StartDate: req.StartDate, EndDate: req.EndDate}
	if err := s.repos.events.Create(ctx, event); err != nil {
		return nil, err
	}
	s.publish(EntitySeasonalEvent, ActionCreated, event.ID)
	return event, nil
}

func (s *catalogService) GetSeasonalEvent(ctx context.Context, id uint64) (*model.SeasonalEvent, error) {
	return s.repos.events.FindByID(ctx, id)
}

func (s *catalogService) ListSeasonalEvents(ctx context.Context) ([]model.SeasonalEvent, error) {
	return s.repos.events.FindAll(ctx)
}

func (s *catalogService) ActiveSeasonalEvents(ctx context.Context, at time.Time) ([]model.SeasonalEvent, error) {
	return s.repos.events.FindActiveAt(ctx, at)
}

func (s *catalogService) UpdateSeasonalEvent(ctx context.Context, id uint64, req SeasonalEventRequest) (*model.SeasonalEvent, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	event := &model.SeasonalEvent{CatalogModel: model.CatalogModel{ID: id}, Name: req.Name, StartDate: req.StartDate, EndDate: req.EndDate}
	if err := s.repos.events.Update(ctx, event); err != nil {
		return nil, err
	}
	s.publish(EntitySeasonalEvent, ActionUpdated, id)
	return s.repos.events.FindByID(ctx, id)
}

func (s *catalogService) DeleteSeasonalEvent(ctx context.Context, id uint64) error {
	if err := s.repos.events.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EntitySeasonalEvent, ActionDeleted, id)
	return nil
}

func (s *catalogService) CreateAttribute(ctx context.Context, req AttributeRequest) (*model.Attribute, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	attribute := &model.Attribute{Name: req.Name, Description: req.Description}
	if err := s.repos.attributes.Create(ctx, attribute); err != nil {
		return nil, err
	}
	s.publish(EntityAttribute, ActionCreated, attribute.ID)
	return attribute, nil
}

func (s *catalogService) GetAttribute(ctx context.Context, id uint64) (*model.Attribute, error) {
	return s.repos.attributes.FindByID(ctx, id)
}

func (s *catalogService) ListAttributes(ctx context.Context) ([]model.Attribute, error) {
	return s.repos.attributes.FindAll(ctx)
}

func (s *catalogService) UpdateAttribute(ctx context.Context, id uint64, req AttributeRequest) (*model.Attribute, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	attribute := &model.Attribute{CatalogModel: model.CatalogModel{ID: id}, Name: req.Name, Description: req.Description}
	if err := s.repos.attributes.Update(ctx, attribute); err != nil {
		return nil, err
	}
	s.publish(EntityAttribute, ActionUpdated, id)
	return s.repos.attributes.FindByID(ctx, id)
}

// DeleteAttribute removes the attribute and, through the cascade, its values.
func (s *catalogService) DeleteAttribute(ctx context.Context, id uint64) error {
	if err := s.repos.attributes.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EntityAttribute, ActionDeleted, id)
	return nil
}

func (s *catalogService) AddAttributeValue(ctx context.Context, attributeID uint64, req AttributeValueRequest) (*model.AttributeValue, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	value := &model.AttributeValue{Value: req.Value, AttributeID: attributeID}
	if err := s.repos.attributes.AddValue(ctx, value); err != nil {
		return nil, err
	}
	s.publish(EntityAttributeValue, ActionCreated, value.ID)
	return value, nil
}

func (s *catalogService) UpdateAttributeValue(ctx context.Context, id uint64, req AttributeValueRequest) (*model.AttributeValue, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	existing, err := s.repos.attributes.FindValue(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Value = req.Value
	if err := s.repos.attributes.UpdateValue(ctx, existing); err != nil {
		return nil, err
	}
	s.publish(EntityAttributeValue, ActionUpdated, id)
	return existing, nil
}

func (s *catalogService) DeleteAttributeValue(ctx context.Context, id uint64) error {
	if err := s.repos.attributes.DeleteValue(ctx, id); err != nil {
		return err
	}
	s.publish(EntityAttributeValue, ActionDeleted, id)
	return nil
}

func (s *catalogService) CreateProductType(ctx context.Context, req ProductTypeRequest) (*model.ProductType, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	productType := &model.ProductType{Name: req.Name, ParentID: req.ParentID}
	if err := s.repos.productTypes.Create(ctx, productType); err != nil {
		return nil, err
	}
	s.publish(EntityProductType, ActionCreated, productType.ID)
	return productType, nil
}

func (s *catalogService) GetProductType(ctx context.Context, id uint64) (*model.ProductType, error) {
	return s.repos.productTypes.FindByID(ctx, id)
}

func (s *catalogService) ListProductTypes(ctx context.Context) ([]model.ProductType, error) {
	return s.repos.productTypes.FindAll(ctx)
}

func (s *catalogService) UpdateProductType(ctx context.Context, id uint64, req ProductTypeRequest) (*model.ProductType, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	productType := &model.ProductType{CatalogModel: model.CatalogModel{ID: id}, Name: req.Name, ParentID: req.ParentID}
	if err := s.repos.productTypes.Update(ctx, productType); err != nil {
		return nil, err
	}
	s.publish(EntityProductType, ActionUpdated, id)
	return s.repos.productTypes.FindByID(ctx, id)
}

// DeleteProductType removes the type with its whole subtree.
func (s *catalogService) DeleteProductType(ctx context.Context, id uint64) error {
	if err := s.repos.productTypes.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EntityProductType, ActionDeleted, id)
	return nil
}
