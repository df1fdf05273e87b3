package response

import (
	"waste-dashboard/internal/domain/user"
)

type OrgUnitResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type SessionResponse struct {
	UserID        string           `json:"id"`
	Email         string           `json:"email"`
	Role          string           `json:"role"`
	Company       *user.OrgRef     `json:"company,omitempty"`
	BranchAddress *user.OrgRef     `json:"branchAddress,omitempty"`
	OrgUnit       *OrgUnitResponse `json:"orgUnit,omitempty"`
	Overridden    bool             `json:"overridden"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresIn   int64            `json:"expires_in"`
	User        *SessionResponse `json:"user"`
}

func NewOrgUnitResponse(u *user.OrgUnit) *OrgUnitResponse {
	if u == nil {
		return nil
	}
	return &OrgUnitResponse{Kind: string(u.Kind()), ID: u.ID(), Name: u.Name()}
}

func NewSessionResponse(s *user.Session) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		UserID:        s.UserID(),
		Email:         s.Email(),
		Role:          s.Role().String(),
		Company:       s.Company(),
		BranchAddress: s.BranchAddress(),
		OrgUnit:       NewOrgUnitResponse(s.OrgUnit()),
		Overridden:    s.IsOverridden(),
	}
}
