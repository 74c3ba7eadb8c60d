package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"size:50;not null;uniqueIndex:uq_departments_code"`
	Name string    `gorm:"size:255;not null"`

	// Skala gaji kotor acuan departemen, satuan terkecil mata uang.
	GrossSalaryScale int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
