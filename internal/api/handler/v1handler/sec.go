package v1handler

import (
	"context"
	"domainchecker/internal/config"
	"domainchecker/pkg/domain"
	"domainchecker/pkg/serrors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// OwnerIDKey is the context key under which the authenticated domain.OwnerID is stored.
const OwnerIDKey contextKey = "ownerID"

// ErrUnauthorized is returned for every missing, malformed or rejected token.
var ErrUnauthorized = serrors.With(serrors.ErrUnauthorized, "unauthorized")

// SecHandlerOptions configures token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies RS256 bearer tokens whose subject is the owner UUID.
type SecHandler struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
		keyFn: func(*jwt.Token) (any, error) { return key, nil },
	}, nil
}

// HandleBearerAuth validates token and returns ctx carrying the owner ID.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	if token == "" {
		return ctx, ErrUnauthorized
	}

	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(token, &claims, s.keyFn); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "unauthorized")
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "unauthorized")
	}

	return context.WithValue(ctx, OwnerIDKey, domain.OwnerID(ownerID)), nil
}

// OwnerIDFrom returns the authenticated owner stored by HandleBearerAuth.
func OwnerIDFrom(ctx context.Context) (domain.OwnerID, error) {
	ownerID, ok := ctx.Value(OwnerIDKey).(domain.OwnerID)
	if !ok {
		return domain.OwnerID{}, ErrUnauthorized
	}

	return ownerID, nil
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
