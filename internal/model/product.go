package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	CatalogModel
	PID         string      `gorm:"column:pid;type:varchar(255);not null" json:"pid"`
	Name        string      `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	Description *string     `gorm:"type:text" json:"description"`
	IsDigital   bool        `gorm:"not null;default:false" json:"is_digital"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
	IsActive    bool        `gorm:"not null;default:true" json:"is_active"`
	StockStatus StockStatus `gorm:"type:varchar(3);not null;default:OSS" json:"stock_status"`

	// Optional references, nulled when the referenced row is deleted
	CategoryID      *uint64        `gorm:"index" json:"category_id"`
	Category        *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	SeasonalEventID *uint64        `gorm:"index" json:"seasonal_event_id"`
	SeasonalEvent   *SeasonalEvent `gorm:"foreignKey:SeasonalEventID;constraint:OnDelete:SET NULL" json:"seasonal_event,omitempty"`

	// Relasi
	ProductTypeLinks []ProductProductType `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	ProductTypes     []ProductType        `gorm:"-" json:"product_types,omitempty"`
	ProductLines     []ProductLine        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"product_lines,omitempty"`
	StockControl     *StockControl        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"stock_control,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = MakeSlug(p.Name)
	}
	if p.StockStatus == "" {
		p.StockStatus = DefaultStockStatus
	}
	return nil
}
