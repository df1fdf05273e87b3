//go:build unit || e2e

package builder

import (
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/tests/common/upstreamtest"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	UserID     string
	Email      string
	Password   string
	Role       user.Role
	CompanyID  string
	BranchID   string
	BranchName string
	Override   *user.OrgUnit
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		UserID:     uuid.NewString(),
		Email:      "test@example.com",
		Password:   "password123",
		Role:       user.RoleBinDisplayUser,
		CompanyID:  "company-1",
		BranchID:   "branch-1",
		BranchName: "Head Office",
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SessionBuilder) BuildDomain() *user.Session {
	var company, branch *user.OrgRef
	if b.CompanyID != "" {
		company = &user.OrgRef{ID: b.CompanyID}
	}
	if b.BranchID != "" {
		branch = &user.OrgRef{ID: b.BranchID, Name: b.BranchName}
	}
	sess, err := user.NewSession(b.UserID, b.Email, b.Role, company, branch)
	if err != nil {
		panic(err)
	}
	if b.Override != nil {
		sess = sess.WithOverride(*b.Override)
	}
	return sess
}

func (b *SessionBuilder) BuildAccount() upstreamtest.Account {
	return upstreamtest.Account{
		ID:         b.UserID,
		Email:      b.Email,
		Password:   b.Password,
		Role:       string(b.Role),
		CompanyID:  b.CompanyID,
		BranchID:   b.BranchID,
		BranchName: b.BranchName,
	}
}

// Fluent builder methods
func (b *SessionBuilder) WithEmail(email string) *SessionBuilder {
	b.Email = email
	return b
}

func (b *SessionBuilder) WithRole(role user.Role) *SessionBuilder {
	b.Role = role
	return b
}

func (b *SessionBuilder) WithBranch(id, name string) *SessionBuilder {
	b.BranchID = id
	b.BranchName = name
	return b
}

func (b *SessionBuilder) WithoutBranch() *SessionBuilder {
	b.BranchID = ""
	b.BranchName = ""
	return b
}

func (b *SessionBuilder) WithOverride(kind user.OrgUnitKind, id, name string) *SessionBuilder {
	unit, err := user.NewOrgUnit(string(kind), id, name)
	if err != nil {
		panic(err)
	}
	b.Override = &unit
	return b
}
