package model

// CatalogModels returns every catalog table in dependency order.
func CatalogModels() []interface{} {
	return []interface{}{
		&Category{},
		&SeasonalEvent{},
		&Attribute{},
		&AttributeValue{},
		&ProductType{},
		&Product{},
		&ProductLine{},
		&ProductImage{},
		&ProductLineAttributeValue{},
		&ProductProductType{},
		&StockControl{},
	}
}

// AdminModels returns the tables backing admin accounts.
func AdminModels() []interface{} {
	return []interface{}{&Privilege{}, &User{}}
}

// AllModels returns every table migrated by the application.
func AllModels() []interface{} {
	return append(CatalogModels(), AdminModels()...)
}
