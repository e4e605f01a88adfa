package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"route-service-fleetsync/internal/domain"
	"route-service-fleetsync/internal/logx"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller stored by Auth, or domain.Anonymous.
func PrincipalFrom(ctx context.Context) domain.Principal {
	if p, ok := ctx.Value(principalKey{}).(domain.Principal); ok {
		return p
	}
	return domain.Anonymous
}

var errBadClaims = errors.New("invalid token claims")

// Auth checks a Bearer HS256 token signed with secret and stores the caller
// in the request context. An empty secret disables the check and every
// request runs as domain.Anonymous.
func Auth(logger logx.Logger, secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		if len(key) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(logger, w, r, "Missing or invalid Authorization header", nil)
				return
			}
			p, err := parsePrincipal(raw, key)
			if err != nil {
				unauthorized(logger, w, r, "Invalid or expired token", err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func bearer(h string) (string, bool) {
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(prefix):])
	return tok, tok != ""
}

func parsePrincipal(raw string, key []byte) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Principal{}, err
	}

	id, ok := userID(claims["sub"])
	if !ok {
		id, ok = userID(claims["user_id"])
	}
	if !ok {
		return domain.Principal{}, errBadClaims
	}
	role, _ := claims["role"].(string)
	return domain.Principal{UserID: id, Role: strings.ToUpper(strings.TrimSpace(role))}, nil
}

// userID accepts a numeric claim or a numeric string.
func userID(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		if x <= 0 || x != float64(int64(x)) {
			return 0, false
		}
		return int64(x), true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func unauthorized(logger logx.Logger, w http.ResponseWriter, r *http.Request, msg string, cause error) {
	if logger != nil {
		logger.Warn("unauthorized request",
			logx.String("method", r.Method),
			logx.String("path", r.URL.Path),
			logx.Err(cause),
		)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"error":"`+msg+`"}`)
}
