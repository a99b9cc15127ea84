package employee

type CreateEmployeeRequest struct {
	FullName    string  `json:"full_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number"`
	Role        string  `json:"role" binding:"omitempty,oneof=employee manager admin"`
}

type UpdateEmployeeRequest struct {
	FullName    string  `json:"full_name" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	Role        string  `json:"role" binding:"omitempty,oneof=employee manager admin"`
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        string  `json:"role"`
}
