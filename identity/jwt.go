package identity

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleSuperAdmin passes every permission check of a JWTProvider.
const RoleSuperAdmin = "super admin"

// Claims is the payload of a locally verifiable access token.
type Claims struct {
	UserID      uint     `json:"user_id"`
	Email       string   `json:"email"`
	FullName    string   `json:"full_name"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	HospitalID  uint     `json:"hospital_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider verifies HS256 tokens signed with a shared secret.
type JWTProvider struct {
	secret []byte
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

// Sign issues a token for claims valid for ttl.
func (p *JWTProvider) Sign(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *JWTProvider) Check(_ context.Context, token, permission string) (*Identity, error) {
	token = bearerToken(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, &StatusError{StatusCode: http.StatusUnauthorized, Message: "invalid or expired token"}
	}

	return &Identity{
		Permitted:  contains(claims.Roles, RoleSuperAdmin) || contains(claims.Permissions, permission),
		UserID:     claims.UserID,
		Email:      claims.Email,
		FullName:   claims.FullName,
		Roles:      claims.Roles,
		HospitalID: claims.HospitalID,
	}, nil
}

// bearerToken strips an optional case-insensitive "Bearer" scheme. A bare
// scheme with nothing after it yields "".
func bearerToken(raw string) string {
	raw = strings.TrimSpace(raw)
	const scheme = "bearer"
	if len(raw) >= len(scheme) && strings.EqualFold(raw[:len(scheme)], scheme) {
		rest := raw[len(scheme):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimSpace(rest)
		}
	}
	return raw
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
