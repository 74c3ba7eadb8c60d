package salary

type RecordSalaryRequest struct {
	EmployeeID     string `json:"employee_id" binding:"required,uuid"`
	DepartmentID   string `json:"department_id" binding:"required,uuid"`
	GrossSalary    int64  `json:"gross_salary" binding:"gte=0"`
	TotalDeduction int64  `json:"total_deduction" binding:"gte=0"`
	Month          string `json:"month" binding:"required"`
}

// AmendSalaryRequest hanya boleh mengoreksi angka gross/deduction.
// Field bernilai zero mempertahankan nilai lama; net dihitung ulang.
type AmendSalaryRequest struct {
	GrossSalary    int64 `json:"gross_salary" binding:"omitempty,gte=0"`
	TotalDeduction int64 `json:"total_deduction" binding:"omitempty,gte=0"`
}

type MonthlyReportQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required"`
}

type SalaryEmployeeResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

type SalaryResponse struct {
	ID             string                  `json:"id"`
	EmployeeID     string                  `json:"employee_id"`
	DepartmentID   string                  `json:"department_id"`
	GrossSalary    int64                   `json:"gross_salary"`
	TotalDeduction int64                   `json:"total_deduction"`
	NetSalary      int64                   `json:"net_salary"`
	Month          string                  `json:"month"`
	Employee       *SalaryEmployeeResponse `json:"employee,omitempty"`
	DepartmentName string                  `json:"department_name,omitempty"`
}
