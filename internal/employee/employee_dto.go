package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Position       string `json:"position" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Telephone      string `json:"telephone" binding:"required"`
	Gender         string `json:"gender" binding:"required,oneof=Male Female"`
	HiredDate      string `json:"hired_date" binding:"required"`
	DepartmentID   string `json:"department_id" binding:"required,uuid"`
}

// UpdateEmployeeRequest adalah partial update: field kosong mempertahankan
// nilai sebelumnya. Referensi departemen TIDAK divalidasi ulang di sini.
type UpdateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Position       string `json:"position"`
	Address        string `json:"address"`
	Telephone      string `json:"telephone"`
	Gender         string `json:"gender" binding:"omitempty,oneof=Male Female"`
	HiredDate      string `json:"hired_date"`
	DepartmentID   string `json:"department_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Position       string `json:"position"`
	Address        string `json:"address"`
	Telephone      string `json:"telephone"`
	Gender         string `json:"gender"`
	HiredDate      string `json:"hired_date"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
}

// EmployeeOptionResponse dipakai dropdown form entri gaji.
type EmployeeOptionResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}
