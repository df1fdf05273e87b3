package jwt

import (
	"errors"
	"time"

	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type OverrideClaim struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Claims struct {
	UserID        string         `json:"user_id"`
	Email         string         `json:"email"`
	Role          string         `json:"role"`
	Company       *user.OrgRef   `json:"company,omitempty"`
	BranchAddress *user.OrgRef   `json:"branch_address,omitempty"`
	Override      *OverrideClaim `json:"override,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clock.NewRealClock(),
	}
}

func (s *Service) WithClock(c clock.Clock) *Service {
	s.clock = c
	return s
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(sess *user.Session) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserID:        sess.UserID(),
		Email:         sess.Email(),
		Role:          sess.Role().String(),
		Company:       sess.Company(),
		BranchAddress: sess.BranchAddress(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}
	if o := sess.Override(); o != nil {
		claims.Override = &OverrideClaim{Kind: string(o.Kind()), ID: o.ID(), Name: o.Name()}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.clock.Now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Session rebuilds the domain session, override included.
func (c *Claims) Session() (*user.Session, error) {
	role, err := user.NewRole(c.Role)
	if err != nil {
		return nil, err
	}
	sess, err := user.NewSession(c.UserID, c.Email, role, c.Company, c.BranchAddress)
	if err != nil {
		return nil, err
	}
	if c.Override != nil {
		unit, err := user.NewOrgUnit(c.Override.Kind, c.Override.ID, c.Override.Name)
		if err != nil {
			return nil, err
		}
		sess = sess.WithOverride(unit)
	}
	return sess, nil
}
