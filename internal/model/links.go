package model

// ProductLineAttributeValue links a product line to the attribute values that
// describe it. Rows go away with either side.
type ProductLineAttributeValue struct {
	CatalogModel
	ProductLineID    uint64          `gorm:"not null;index" json:"product_line_id"`
	ProductLine      *ProductLine    `gorm:"foreignKey:ProductLineID;constraint:OnDelete:CASCADE" json:"-"`
	AttributeValueID uint64          `gorm:"not null;index" json:"attribute_value_id"`
	AttributeValue   *AttributeValue `gorm:"foreignKey:AttributeValueID;constraint:OnDelete:CASCADE" json:"attribute_value,omitempty"`
}

func (ProductLineAttributeValue) TableName() string {
	return "product_line_attribute_values"
}

// ProductProductType links a product to the product types it belongs to.
type ProductProductType struct {
	CatalogModel
	ProductID     uint64       `gorm:"not null;index" json:"product_id"`
	Product       *Product     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	ProductTypeID uint64       `gorm:"not null;index" json:"product_type_id"`
	ProductType   *ProductType `gorm:"foreignKey:ProductTypeID;constraint:OnDelete:CASCADE" json:"product_type,omitempty"`
}

func (ProductProductType) TableName() string {
	return "product_product_types"
}
