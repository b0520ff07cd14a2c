package project

type CreateProjectRequest struct {
	Name      string             `json:"name" binding:"required"`
	Budget    float64            `json:"budget" binding:"gte=0"`
	Status    string             `json:"status" binding:"omitempty,oneof=Active 'On Hold' Completed"`
	RoleRates map[string]float64 `json:"role_rates"`
}

type UpdateProjectRequest struct {
	Name      string             `json:"name" binding:"required"`
	Budget    float64            `json:"budget" binding:"gte=0"`
	Status    string             `json:"status" binding:"required,oneof=Active 'On Hold' Completed"`
	RoleRates map[string]float64 `json:"role_rates"`
}

type ProjectResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Budget    float64            `json:"budget"`
	Status    string             `json:"status"`
	RoleRates map[string]float64 `json:"role_rates"`
	CreatedAt string             `json:"created_at"`
}
