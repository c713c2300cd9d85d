package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/ErlanBelekov/accounts/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = time.Hour

// Claims is what a verified session token says about its bearer.
type Claims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type sessionClaims struct {
	UserID int64 `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 session tokens. It holds no state beyond
// the secret, the TTL and the clock.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(secret []byte, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Service{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token for subjectID that expires one TTL from now.
func (s *Service) Issue(subjectID int64) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// Verify checks the signature first, then expiry, then the subject.
// It returns domain.ErrTokenExpired, domain.ErrTokenInvalid or
// domain.ErrMissingSubject on failure.
func (s *Service) Verify(raw string) (Claims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domain.ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	if claims.UserID == 0 {
		return Claims{}, domain.ErrMissingSubject
	}

	out := Claims{UserID: claims.UserID}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
