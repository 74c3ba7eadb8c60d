package department

type CreateDepartmentRequest struct {
	Code             string `json:"department_code" binding:"required"`
	Name             string `json:"department_name" binding:"required"`
	GrossSalaryScale int64  `json:"gross_salary" binding:"gte=0"`
}

// UpdateDepartmentRequest adalah partial update: field yang kosong / bernilai
// zero dibiarkan seperti nilai sebelumnya.
type UpdateDepartmentRequest struct {
	Code             string `json:"department_code"`
	Name             string `json:"department_name"`
	GrossSalaryScale int64  `json:"gross_salary" binding:"omitempty,gte=0"`
}

type DepartmentResponse struct {
	ID               string `json:"id"`
	Code             string `json:"department_code"`
	Name             string `json:"department_name"`
	GrossSalaryScale int64  `json:"gross_salary"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}
