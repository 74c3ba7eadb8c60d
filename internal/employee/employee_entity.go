package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"size:50;not null;uniqueIndex:uq_employees_number"`
	FirstName      string    `gorm:"size:100;not null"`
	LastName       string    `gorm:"size:100;not null"`
	Position       string    `gorm:"size:100;not null"`
	Address        string    `gorm:"size:255;not null"`
	Telephone      string    `gorm:"size:50;not null"`
	Gender         string    `gorm:"size:10;not null"`
	HiredDate      time.Time `gorm:"type:date;not null"`

	// Referensi by-id; departemen yang dihapus membuat referensi ini
	// menggantung dan join menghasilkan nama kosong.
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Diisi oleh join saat baca, tidak pernah dipersist.
	DepartmentName string `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
