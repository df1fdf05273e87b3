package request

import (
	"waste-dashboard/internal/domain/user"
)

// OverrideRequest names the org unit an administrator steps into.
type OverrideRequest struct {
	Kind string `json:"kind" binding:"required,oneof=branch city region country"`
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"max=200"`
}

func (r *OverrideRequest) ToDomain() (user.OrgUnit, error) {
	return user.NewOrgUnit(r.Kind, r.ID, r.Name)
}

type DashboardQuery struct {
	FromAdmin bool `form:"fromAdmin"`
}

type BranchQuery struct {
	BranchID string `form:"branchId" binding:"max=128"`
}

type AuditQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
