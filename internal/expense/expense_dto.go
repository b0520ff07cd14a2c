package expense

type CreateExpenseRequest struct {
	ProjectID     string  `json:"project_id" binding:"required,uuid"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Date          string  `json:"date" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=Cash Card Transfer"`
	PaidBy        string  `json:"paid_by"`
}

type UpdateExpenseRequest struct {
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Date          string  `json:"date" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=Cash Card Transfer"`
	PaidBy        string  `json:"paid_by"`
}

type ExpenseResponse struct {
	ID            string  `json:"id"`
	ProjectID     string  `json:"project_id"`
	ProjectName   string  `json:"project_name,omitempty"`
	Category      string  `json:"category,omitempty"`
	Description   string  `json:"description,omitempty"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method"`
	PaidBy        string  `json:"paid_by,omitempty"`
}
