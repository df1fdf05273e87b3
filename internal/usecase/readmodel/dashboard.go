package readmodel

import "time"

type CompanyRM struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryTotalRM struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Weight   float64 `json:"weight"`
}

type WasteSummaryRM struct {
	BranchID    string            `json:"branchId"`
	TotalWeight float64           `json:"totalWeight"`
	Categories  []CategoryTotalRM `json:"categories"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

type OverrideAuditRM struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	Action     string    `json:"action"`
	UnitKind   string    `json:"unit_kind,omitempty"`
	UnitID     string    `json:"unit_id,omitempty"`
	UnitName   string    `json:"unit_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
