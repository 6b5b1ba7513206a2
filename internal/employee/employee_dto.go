package employee

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,min=1,max=50"`
	FullName   string `json:"full_name" binding:"required,min=1,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,min=1,max=100"`
}

type EmployeeResponse struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// EmployeeListItem is the summary shape used by the list endpoint.
type EmployeeListItem struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}
