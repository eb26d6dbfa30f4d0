package employee

type CreateEmployeeRequest struct {
	FullName          string  `json:"full_name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone"`
	HireDate          string  `json:"hire_date" binding:"required"`
	EmployeeNumber    string  `json:"employee_number"`
	BaseSalary        int64   `json:"base_salary" binding:"min=0"`
	SalaryStructureID *string `json:"salary_structure_id" binding:"omitempty,uuid"`
}

type UpdateEmployeeRequest struct {
	FullName          string  `json:"full_name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone"`
	BaseSalary        int64   `json:"base_salary" binding:"min=0"`
	SalaryStructureID *string `json:"salary_structure_id" binding:"omitempty,uuid"`
	Status            string  `json:"status" binding:"required,oneof=ACTIVE DISABLED"`
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	EmployeeNumber    string  `json:"employee_number"`
	FullName          string  `json:"full_name"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone,omitempty"`
	HireDate          string  `json:"hire_date"`
	BaseSalary        int64   `json:"base_salary"`
	SalaryStructureID *string `json:"salary_structure_id,omitempty"`
	Status            string  `json:"status"`
}

// EmployeeOption is the slim shape served to dropdowns; cached in redis.
type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}
