package model

// Privilege represents a permission that can be assigned to admin users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "catalog:write"
	Name string `gorm:"type:varchar(100)" json:"name"`
}

const (
	PrivilegeCatalogView   = "catalog:view"
	PrivilegeCatalogWrite  = "catalog:write"
	PrivilegeCatalogDelete = "catalog:delete"
	PrivilegeMediaUpload   = "media:upload"
)

// DefaultPrivileges are seeded on every start
var DefaultPrivileges = []Privilege{
	{Code: PrivilegeCatalogView, Name: "View Catalog"},
	{Code: PrivilegeCatalogWrite, Name: "Create and Update Catalog Entries"},
	{Code: PrivilegeCatalogDelete, Name: "Delete Catalog Entries"},
	{Code: PrivilegeMediaUpload, Name: "Upload Product Images"},
}
