package statement

// Statement is a computed monthly view, never stored. Totals come straight
// from the payroll, expense and advance tables at read time.
type Statement struct {
	ProjectID       string  `json:"project_id"`
	ProjectName     string  `json:"project_name"`
	Month           string  `json:"month"`
	Budget          float64 `json:"budget"`
	TotalPayroll    float64 `json:"total_payroll"`
	TotalExpenses   float64 `json:"total_expenses"`
	TotalAdvances   float64 `json:"total_advances"`
	RemainingBudget float64 `json:"remaining_budget"`
}

// Summary aggregates across every project for the dashboard header.
type Summary struct {
	Month               string  `json:"month"`
	Projects            int     `json:"projects"`
	Employees           int     `json:"employees"`
	TotalPayroll        float64 `json:"total_payroll"`
	TotalExpenses       float64 `json:"total_expenses"`
	OutstandingAdvances float64 `json:"outstanding_advances"`
}
