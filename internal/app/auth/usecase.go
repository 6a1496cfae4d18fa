package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"meowshunt/internal/app/ports"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

var ErrInvalidRequest = errors.New("invalid auth request")

type VerifyRequest struct {
	Authorization string
}

type Identity struct {
	PlayerID string
	Username string
	Email    string
}

// Claims mirrors the access tokens minted by the identity provider.
type Claims struct {
	Email        string         `json:"email,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

type VerifyUseCase struct {
	Secret   []byte
	Issuer   string
	Audience string
	Now      func() time.Time
}

// Execute resolves the caller from a bearer token. Every failure maps to
// ports.ErrNotAuthenticated.
func (u VerifyUseCase) Execute(_ context.Context, req VerifyRequest) (Identity, error) {
	if len(u.Secret) == 0 {
		return Identity{}, ErrInvalidRequest
	}
	raw := strings.TrimSpace(req.Authorization)
	if !strings.HasPrefix(raw, bearerPrefix) {
		return Identity{}, ports.ErrNotAuthenticated
	}
	raw = strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
	if raw == "" {
		return Identity{}, ports.ErrNotAuthenticated
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(nowFn),
	}
	if u.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(u.Issuer))
	}
	if u.Audience != "" {
		opts = append(opts, jwt.WithAudience(u.Audience))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return u.Secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ports.ErrNotAuthenticated, err)
	}
	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return Identity{}, ports.ErrNotAuthenticated
	}
	return Identity{
		PlayerID: subject,
		Username: usernameFromClaims(claims),
		Email:    claims.Email,
	}, nil
}

func usernameFromClaims(c Claims) string {
	if name, ok := c.UserMetadata["username"].(string); ok && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	if at := strings.IndexByte(c.Email, '@'); at > 0 {
		return c.Email[:at]
	}
	return ""
}

// RequirePlayer rejects anonymous callers before any persistence is touched.
func RequirePlayer(playerID string) (string, error) {
	id := strings.TrimSpace(playerID)
	if id == "" {
		return "", ports.ErrNotAuthenticated
	}
	return id, nil
}
