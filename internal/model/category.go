package model

import "gorm.io/gorm"

// Category is a node of the catalog navigation tree.
// A parent cannot be deleted while it still has children (ON DELETE RESTRICT).
type Category struct {
	CatalogModel
	Name     string     `gorm:"type:varchar(100);not null" json:"name"`
	Slug     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	IsActive bool       `gorm:"not null;default:true" json:"is_active"`
	ParentID *uint64    `gorm:"index" json:"parent_id"`
	Parent   *Category  `gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT" json:"children,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = MakeSlug(c.Name)
	}
	return nil
}
