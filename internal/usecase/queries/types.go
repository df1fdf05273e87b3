package queries

import (
	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/domain/user"
)

// BinView is a bin record with its display category resolved.
type BinView struct {
	ID            string  `json:"id"`
	BinName       string  `json:"binName"`
	CurrentWeight float64 `json:"currentWeight"`
	BinCapacity   float64 `json:"binCapacity"`
	IsActive      bool    `json:"isActive"`
	Category      string  `json:"category"`
	Color         string  `json:"color"`
}

type BinListView struct {
	BranchID    string
	TotalWeight float64
	Bins        []BinView
}

type DashboardView struct {
	View     access.View
	Role     user.Role
	OrgUnit  *user.OrgUnit
	BranchID string
	// Panels lists the routes this role may open from the dashboard.
	Panels []access.RouteKey
}

func NewBinViews(bins bin.Collection) []BinView {
	out := make([]BinView, 0, len(bins))
	for _, b := range bins {
		cat := b.Category()
		out = append(out, BinView{
			ID:            b.ID,
			BinName:       b.Name,
			CurrentWeight: b.CurrentWeight,
			BinCapacity:   b.Capacity,
			IsActive:      b.IsActive,
			Category:      cat.Name,
			Color:         cat.Color,
		})
	}
	return out
}
