package user

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidRole    = errors.New("invalid role")
	ErrInvalidOrgUnit = errors.New("invalid org unit")
	ErrEmptyPassword  = errors.New("password must not be empty")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

// Strength rules belong to the upstream backend; only emptiness is rejected here.
func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// OrgRef is an organisational association on the user payload. Upstream
// sends either the bare id or the populated document.
type OrgRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func (r *OrgRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = OrgRef{ID: id}
		return nil
	}

	var doc struct {
		ID         string `json:"id"`
		MongoID    string `json:"_id"`
		Name       string `json:"name"`
		BranchName string `json:"branchName"`
		Company    string `json:"CompanyName"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	ref := OrgRef{ID: doc.ID, Name: doc.Name}
	if ref.ID == "" {
		ref.ID = doc.MongoID
	}
	if ref.Name == "" {
		ref.Name = doc.BranchName
	}
	if ref.Name == "" {
		ref.Name = doc.Company
	}
	*r = ref
	return nil
}

type OrgUnitKind string

const (
	OrgUnitBranch  OrgUnitKind = "branch"
	OrgUnitCity    OrgUnitKind = "city"
	OrgUnitRegion  OrgUnitKind = "region"
	OrgUnitCountry OrgUnitKind = "country"
)

func (k OrgUnitKind) IsValid() bool {
	switch k {
	case OrgUnitBranch, OrgUnitCity, OrgUnitRegion, OrgUnitCountry:
		return true
	default:
		return false
	}
}

// OrgUnit parameterises which data a view fetches.
type OrgUnit struct {
	kind OrgUnitKind
	id   string
	name string
}

func NewOrgUnit(kind, id, name string) (OrgUnit, error) {
	k := OrgUnitKind(strings.ToLower(strings.TrimSpace(kind)))
	id = strings.TrimSpace(id)
	if !k.IsValid() || id == "" {
		return OrgUnit{}, ErrInvalidOrgUnit
	}
	return OrgUnit{kind: k, id: id, name: strings.TrimSpace(name)}, nil
}

func (u OrgUnit) Kind() OrgUnitKind { return u.kind }
func (u OrgUnit) ID() string        { return u.id }
func (u OrgUnit) Name() string      { return u.name }

// BranchID is empty for units above branch level.
func (u OrgUnit) BranchID() string {
	if u.kind != OrgUnitBranch {
		return ""
	}
	return u.id
}
