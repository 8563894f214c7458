package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductLine is a sellable variant of a Product. A product cannot be deleted
// while it still has lines.
type ProductLine struct {
	CatalogModel
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	SKU       uuid.UUID       `gorm:"column:sku;type:uuid;uniqueIndex;not null" json:"sku"`
	StockQty  int             `gorm:"not null;default:0" json:"stock_qty"`
	IsActive  bool            `gorm:"not null;default:true" json:"is_active"`
	Order     int             `gorm:"column:order;not null;default:0" json:"order"`
	Weight    float64         `gorm:"not null;default:0" json:"weight"`
	ProductID uint64          `gorm:"not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`

	AttributeValueLinks []ProductLineAttributeValue `gorm:"foreignKey:ProductLineID;constraint:OnDelete:CASCADE" json:"-"`
	AttributeValues     []AttributeValue            `gorm:"-" json:"attribute_values,omitempty"`
	Images              []ProductImage              `gorm:"foreignKey:ProductLineID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (ProductLine) TableName() string {
	return "product_lines"
}

// BeforeCreate assigns a random SKU when the caller left it empty.
func (l *ProductLine) BeforeCreate(tx *gorm.DB) error {
	if l.SKU == uuid.Nil {
		l.SKU = uuid.New()
	}
	return nil
}
