package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"meowshunt/internal/app/ports"

	"github.com/golang-jwt/jwt/v5"
)

var (
	testSecret = []byte("meowshunt-test-secret-0123456789")
	testNow    = time.Unix(1760000000, 0).UTC()
)

func sign(t *testing.T, secret []byte, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims() Claims {
	return Claims{
		Email:        "tabby@example.com",
		UserMetadata: map[string]any{"username": "tabby"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "player-1",
			Issuer:    "meowshunt-auth",
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(testNow.Add(-time.Minute)),
		},
	}
}

func verifier() VerifyUseCase {
	return VerifyUseCase{Secret: testSecret, Issuer: "meowshunt-auth", Now: func() time.Time { return testNow }}
}

func TestVerifyUseCase_AcceptsValidToken(t *testing.T) {
	token := sign(t, testSecret, jwt.SigningMethodHS256, validClaims())
	id, err := verifier().Execute(context.Background(), VerifyRequest{Authorization: "Bearer " + token})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.PlayerID != "player-1" || id.Username != "tabby" || id.Email != "tabby@example.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestVerifyUseCase_UsernameFallsBackToEmail(t *testing.T) {
	claims := validClaims()
	claims.UserMetadata = nil
	token := sign(t, testSecret, jwt.SigningMethodHS256, claims)
	id, err := verifier().Execute(context.Background(), VerifyRequest{Authorization: "Bearer " + token})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.Username != "tabby" {
		t.Fatalf("username = %q, want tabby", id.Username)
	}
}

func TestVerifyUseCase_RejectsBadTokens(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(testNow.Add(-time.Second))
	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"
	noSubject := validClaims()
	noSubject.Subject = ""

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"empty bearer":   "Bearer ",
		"garbage":        "Bearer not.a.jwt",
		"wrong secret":   "Bearer " + sign(t, []byte("another-secret-0123456789abcdef"), jwt.SigningMethodHS256, validClaims()),
		"wrong alg":      "Bearer " + sign(t, testSecret, jwt.SigningMethodHS512, validClaims()),
		"expired":        "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, expired),
		"wrong issuer":   "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, wrongIssuer),
		"no subject":     "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, noSubject),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := verifier().Execute(context.Background(), VerifyRequest{Authorization: header})
			if !errors.Is(err, ports.ErrNotAuthenticated) {
				t.Fatalf("expected ErrNotAuthenticated, got %v", err)
			}
		})
	}
}

func TestVerifyUseCase_RequiresSecret(t *testing.T) {
	_, err := VerifyUseCase{}.Execute(context.Background(), VerifyRequest{Authorization: "Bearer x"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestRequirePlayer(t *testing.T) {
	if _, err := RequirePlayer("  "); !errors.Is(err, ports.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if id, err := RequirePlayer(" p1 "); err != nil || id != "p1" {
		t.Fatalf("RequirePlayer = %q,%v", id, err)
	}
}
