package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vasapolrittideah/corporate-site-api/internal/config"
)

// Verification failure kinds. The authentication middleware maps these to
// distinct response codes so clients can tell "expired, refresh" apart from
// "invalid, re-authenticate".
var (
	ErrTokenExpired     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not valid yet")
	ErrTokenMalformed   = errors.New("token is malformed or has an invalid signature")
)

// Construction failure kinds.
var (
	ErrMissingSecret = errors.New("no signing secret configured")
	ErrWeakSecret    = errors.New("signing secret is a known placeholder or too short")
)

// placeholderSecrets are sample values that ship in documentation and env
// templates. Deploying with one of these is always a mistake.
var placeholderSecrets = map[string]struct{}{
	"secret":          {},
	"changeme":        {},
	"your-secret-key": {},
	"jwt_secret":      {},
	"dev-secret":      {},
}

const minSecretLength = 32

// clockSkew is the tolerance applied to exp and nbf during verification.
const clockSkew = 60 * time.Second

// Claims is the identity assertion carried by a token. Role is copied from
// the account at issuance time and trusted until expiry; only existence and
// the active flag are re-checked per request.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed identity tokens. It is stateless apart
// from the configuration captured at construction and is safe for concurrent
// use.
type Service struct {
	secret    []byte
	issuer    string
	audience  string
	expiresIn time.Duration
}

// NewService creates a token service from configuration. It refuses empty,
// placeholder, and short secrets outright so a misconfigured deployment
// fails at startup rather than serving forgeable tokens.
func NewService(cfg config.TokenConfig) (*Service, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if _, ok := placeholderSecrets[strings.ToLower(secret)]; ok {
		return nil, fmt.Errorf("%w: %q is a sample value", ErrWeakSecret, secret)
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, minSecretLength, len(secret))
	}

	return &Service{
		secret:    []byte(secret),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		expiresIn: cfg.ExpiresIn,
	}, nil
}

// Issue signs a token asserting that subjectID holds role. Issued-at and
// not-before are both the current time; expiry is the configured lifetime.
func (s *Service) Issue(subjectID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string, returning its claims. Failures
// are reported as ErrTokenExpired, ErrTokenNotYetValid, or ErrTokenMalformed;
// the claims of a failed token are never returned.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithLeeway(clockSkew),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenNotYetValid
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
