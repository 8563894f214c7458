package model

import "path"

// ImageUploadDir is the directory, relative to the media root, holding image files.
const ImageUploadDir = "product_images"

type ProductImage struct {
	CatalogModel
	Name            string       `gorm:"type:varchar(100);not null" json:"name"`
	AlternativeText string       `gorm:"type:varchar(100);not null" json:"alternative_text"`
	URL             string       `gorm:"column:url;type:varchar(100);not null" json:"url"` // relative to the media root
	ProductLineID   uint64       `gorm:"not null;index" json:"product_line_id"`
	ProductLine     *ProductLine `gorm:"foreignKey:ProductLineID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

// ImagePath returns the stored url for a file name saved under ImageUploadDir.
func ImagePath(fileName string) string {
	return path.Join(ImageUploadDir, fileName)
}
