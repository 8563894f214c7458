package model

// ProductType classifies products ("apparel" > "shoes"). Unlike Category,
// deleting a parent type removes its whole subtree.
type ProductType struct {
	CatalogModel
	Name     string        `gorm:"type:varchar(100);not null" json:"name"`
	ParentID *uint64       `gorm:"index" json:"parent_id"`
	Parent   *ProductType  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`
	Children []ProductType `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"children,omitempty"`
}

func (ProductType) TableName() string {
	return "product_types"
}
