package employee

type CreateEmployeeRequest struct {
	Name         string  `json:"name" binding:"required"`
	EmployeeCode string  `json:"employee_code"`
	IqamaNumber  string  `json:"iqama_number"`
	Role         string  `json:"role"`
	Nationality  string  `json:"nationality"`
	Phone        string  `json:"phone"`
	DateOfJoin   string  `json:"date_of_join" binding:"required"`
	ProjectID    *string `json:"project_id" binding:"omitempty,uuid"`
}

type UpdateEmployeeRequest struct {
	Name         string  `json:"name" binding:"required"`
	EmployeeCode string  `json:"employee_code" binding:"required"`
	IqamaNumber  string  `json:"iqama_number"`
	Role         string  `json:"role"`
	Nationality  string  `json:"nationality"`
	Phone        string  `json:"phone"`
	DateOfJoin   string  `json:"date_of_join" binding:"required"`
	ProjectID    *string `json:"project_id" binding:"omitempty,uuid"`
	Active       bool    `json:"active"`
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	EmployeeCode string  `json:"employee_code"`
	IqamaNumber  string  `json:"iqama_number,omitempty"`
	Role         string  `json:"role,omitempty"`
	Nationality  string  `json:"nationality,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	DateOfJoin   string  `json:"date_of_join"`
	ProjectID    *string `json:"project_id,omitempty"`
	Active       bool    `json:"active"`
}
