package payroll

type CreatePayrollRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	ProjectID   *string `json:"project_id" binding:"omitempty,uuid"`
	Month       string  `json:"month" binding:"required"`
	HoursWorked float64 `json:"hours_worked" binding:"gte=0"`
	Rate        float64 `json:"rate" binding:"gte=0"`
	Status      string  `json:"status" binding:"omitempty,oneof=Paid Unpaid"`
}

type UpdatePayrollRequest struct {
	ProjectID   *string `json:"project_id" binding:"omitempty,uuid"`
	Month       string  `json:"month" binding:"required"`
	HoursWorked float64 `json:"hours_worked" binding:"gte=0"`
	Rate        float64 `json:"rate" binding:"gte=0"`
	Status      string  `json:"status" binding:"required,oneof=Paid Unpaid"`
}

type PayrollQueryFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	ProjectID  string `form:"project_id" binding:"omitempty,uuid"`
	Month      string `form:"month"`
	Status     string `form:"status" binding:"omitempty,oneof=Paid Unpaid"`
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ProjectID    *string `json:"project_id,omitempty"`
	Month        string  `json:"month"`
	HoursWorked  float64 `json:"hours_worked"`
	Rate         float64 `json:"rate"`
	GrossPay     float64 `json:"gross_pay"`
	NetPay       float64 `json:"net_pay"`
	Status       string  `json:"status"`
}
