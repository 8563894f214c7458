package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SlugMaxLength matches the varchar size of every slug column.
const SlugMaxLength = 50

// CatalogModel is the big auto-increment surrogate key shared by every catalog table.
// Catalog rows are hard deleted so the database can apply cascade, set-null and restrict.
type CatalogModel struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
}

// BaseModel handles ID (UUID) and standard Audit Trails for admin accounts
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"` // Soft Delete support

	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
}

func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}

// MakeSlug derives a URL slug from a display name, cut to SlugMaxLength.
func MakeSlug(name string) string {
	s := slug.Make(name)
	if len(s) > SlugMaxLength {
		s = strings.TrimRight(s[:SlugMaxLength], "-")
	}
	return s
}
