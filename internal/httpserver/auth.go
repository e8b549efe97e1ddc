// internal/httpserver/auth.go
//
// Bearer-token authentication for operator endpoints.
//
// Tokens are HS256 JWTs with a subject and an expiry, signed with the
// configured secret. They are minted offline (see IssueToken and the CLI's
// token command); there is no login endpoint.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a token for subject valid for ttl.
func IssueToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("empty JWT secret")
	}
	if subject == "" {
		return "", time.Time{}, errors.New("empty subject")
	}
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(secret))
	return ss, exp, err
}

// parseToken verifies tokenStr and returns its subject.
func parseToken(secret, tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ctxSubjectKey is the context key type for the authenticated subject.
type ctxSubjectKey struct{}

// Subject returns the authenticated subject stored by requireAuth, if any.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(ctxSubjectKey{}).(string)
	return s
}

// requireAuth enforces a valid JWT and injects its subject into the request context.
func (s *Server) requireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" || s.opts.JWTSecret == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized", "")
				return
			}
			sub, err := parseToken(s.opts.JWTSecret, tokenStr)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid_token", "")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSubjectKey{}, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
