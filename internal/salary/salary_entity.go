package salary

import (
	"time"

	"github.com/google/uuid"
)

// Salary adalah satu baris ledger per (employee, department, bulan).
// Kedua referensi disimpan apa adanya: tidak ada pengecekan keberadaan
// maupun kecocokan pasangan employee/department saat insert.
type Salary struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Financials disimpan dalam satuan terkecil untuk hindari floating error.
	GrossSalary    int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeduction int64 `gorm:"type:bigint;not null;default:0"`

	// Selalu diturunkan ulang dari gross - deduction setiap persist;
	// nilai kiriman client tidak pernah dipakai.
	NetSalary int64 `gorm:"type:bigint;not null;default:0"`

	// Periode gaji; hanya komponen tahun+bulan yang bermakna untuk query.
	Month time.Time `gorm:"type:date;not null;index"`

	// Diisi join saat baca, tidak dipersist.
	EmployeeFirstName string `gorm:"->;-:migration"`
	EmployeeLastName  string `gorm:"->;-:migration"`
	EmployeePosition  string `gorm:"->;-:migration"`
	DepartmentName    string `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
