package salary

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

const joinedSelect = `
	salaries.*,
	employees.first_name AS employee_first_name,
	employees.last_name AS employee_last_name,
	employees.position AS employee_position,
	departments.name AS department_name
`

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sal *Salary) error
	FindAll(ctx context.Context) ([]Salary, error)
	FindByID(ctx context.Context, id string) (*Salary, error)
	FindByMonthRange(ctx context.Context, start, end time.Time) ([]Salary, error)
	Update(ctx context.Context, sal *Salary) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, sal *Salary) error {
	return r.db.WithContext(ctx).Create(sal).Error
}

// FindAll me-resolve display field Employee/Department per baris lewat
// LEFT JOIN; referensi yang sudah menggantung menghasilkan nama kosong.
func (r *repository) FindAll(ctx context.Context) ([]Salary, error) {
	var sals []Salary
	err := r.db.WithContext(ctx).
		Table("salaries").
		Select(joinedSelect).
		Joins("LEFT JOIN employees ON employees.id = salaries.employee_id").
		Joins("LEFT JOIN departments ON departments.id = salaries.department_id").
		Order("salaries.created_at ASC").
		Find(&sals).Error
	return sals, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Salary, error) {
	var sal Salary
	err := r.db.WithContext(ctx).
		Table("salaries").
		Select(joinedSelect).
		Joins("LEFT JOIN employees ON employees.id = salaries.employee_id").
		Joins("LEFT JOIN departments ON departments.id = salaries.department_id").
		Where("salaries.id = ?", id).
		First(&sal).Error
	return &sal, err
}

// FindByMonthRange memilih baris yang kolom month-nya jatuh di dalam
// window, inklusif di kedua ujung.
func (r *repository) FindByMonthRange(ctx context.Context, start, end time.Time) ([]Salary, error) {
	var sals []Salary
	err := r.db.WithContext(ctx).
		Table("salaries").
		Select(joinedSelect).
		Joins("LEFT JOIN employees ON employees.id = salaries.employee_id").
		Joins("LEFT JOIN departments ON departments.id = salaries.department_id").
		Where("salaries.month >= ?", start).
		Where("salaries.month <= ?", end).
		Order("salaries.created_at ASC").
		Find(&sals).Error
	return sals, err
}

func (r *repository) Update(ctx context.Context, sal *Salary) error {
	return r.db.WithContext(ctx).Save(sal).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Salary{}, "id = ?", id).Error
}
