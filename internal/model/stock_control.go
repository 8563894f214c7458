package model

// StockControl holds the aggregate stock counter of a Product. There is at most
// one row per product and it is deleted with the product.
type StockControl struct {
	CatalogModel
	StockQty  int      `gorm:"not null;default:0" json:"stock_qty"`
	ProductID uint64   `gorm:"not null;uniqueIndex" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StockControl) TableName() string {
	return "stock_controls"
}
