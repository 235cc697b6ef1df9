package model

import (
	"time"
)

// BaseEntity carries the audit timestamps shared by all persisted models.
// GORM fills CreatedAt/UpdatedAt automatically (UTC via the NowFunc in the
// database package); partial updates set updated_at explicitly.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}
