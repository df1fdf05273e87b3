package backend

import (
	"context"
	"net/http"

	"waste-dashboard/internal/domain/auth"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/pkg/errs"
)

type userPayload struct {
	ID            string       `json:"id"`
	MongoID       string       `json:"_id"`
	Email         string       `json:"email"`
	Role          string       `json:"role"`
	Company       *user.OrgRef `json:"company"`
	BranchAddress *user.OrgRef `json:"branchAddress"`
}

// upstream answers either {"user": {...}} or the bare user object
type userEnvelope struct {
	User *userPayload `json:"user"`
	userPayload
}

func (e *userEnvelope) session() (*user.Session, error) {
	p := &e.userPayload
	if e.User != nil {
		p = e.User
	}
	id := p.ID
	if id == "" {
		id = p.MongoID
	}
	role, err := user.NewRole(p.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "upstream user role %q", p.Role)
	}
	return user.NewSession(id, p.Email, role, p.Company, p.BranchAddress)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) CurrentUser(ctx context.Context) (*user.Session, error) {
	var env userEnvelope
	if err := c.do(ctx, "current_user", http.MethodGet, "/api/v1/auth/me", nil, &env); err != nil {
		return nil, err
	}
	return env.session()
}

func (c *Client) Login(ctx context.Context, creds auth.Credentials) (*user.Session, error) {
	req := loginRequest{Email: creds.Email().Value(), Password: creds.Password().Value()}
	var env userEnvelope
	if err := c.do(ctx, "login", http.MethodPost, "/api/v1/auth/login", req, &env); err != nil {
		return nil, err
	}
	return env.session()
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/api/v1/auth/logout", nil, nil)
}
