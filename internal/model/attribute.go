package model

// Attribute is a variant dimension such as "colour" or "size".
type Attribute struct {
	CatalogModel
	Name        string           `gorm:"type:varchar(100);not null" json:"name"`
	Description *string          `gorm:"type:text" json:"description"`
	Values      []AttributeValue `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
}

func (Attribute) TableName() string {
	return "attributes"
}

// AttributeValue is one concrete value of an Attribute ("red", "XL").
// Values are removed together with their attribute.
type AttributeValue struct {
	CatalogModel
	Value       string     `gorm:"column:attribute_value;type:varchar(100);not null" json:"attribute_value"`
	AttributeID uint64     `gorm:"not null;index" json:"attribute_id"`
	Attribute   *Attribute `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE" json:"attribute,omitempty"`
}

func (AttributeValue) TableName() string {
	return "attribute_values"
}
