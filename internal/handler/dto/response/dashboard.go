package response

import (
	"waste-dashboard/internal/usecase/queries"
	"waste-dashboard/internal/usecase/readmodel"
)

type DashboardResponse struct {
	View     string           `json:"view"`
	Role     string           `json:"role"`
	OrgUnit  *OrgUnitResponse `json:"orgUnit,omitempty"`
	BranchID string           `json:"branchId,omitempty"`
	Panels   []string         `json:"panels"`
}

type BinListResponse struct {
	BranchID    string            `json:"branchId"`
	TotalWeight float64           `json:"totalWeight"`
	Bins        []queries.BinView `json:"bins"`
}

type CompanyListResponse struct {
	Companies []readmodel.CompanyRM `json:"companies"`
}

type OverrideResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresIn   int64            `json:"expires_in"`
	User        *SessionResponse `json:"user"`
}

type AuditListResponse struct {
	Entries []readmodel.OverrideAuditRM `json:"entries"`
}

// LiveFrame is one message on the browser websocket.
type LiveFrame struct {
	Type     string                    `json:"type"`
	BranchID string                    `json:"branchId,omitempty"`
	Loading  bool                      `json:"loading"`
	Error    string                    `json:"error,omitempty"`
	Bins     []queries.BinView         `json:"bins,omitempty"`
	Summary  *readmodel.WasteSummaryRM `json:"summary,omitempty"`
}

const (
	LiveFrameSnapshot = "snapshot"
	LiveFrameSummary  = "summary"
)
