package token

import (
	"errors"
	"testing"
	"time"

	"github.com/ErlanBelekov/accounts/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "token-test-secret-at-least-32-chars"

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewService([]byte(testSecret), time.Hour)

	tok, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", claims.UserID)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Fatalf("lifetime = %v, want 1h", got)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := NewService([]byte(testSecret), time.Hour, WithClock(func() time.Time { return clock }))

	tok, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	clock = issuedAt.Add(59 * time.Minute)
	if _, err := svc.Verify(tok); err != nil {
		t.Fatalf("token should still be valid at +59m: %v", err)
	}

	clock = issuedAt.Add(time.Hour + time.Second)
	_, err = svc.Verify(tok)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_ExpiredAndWrongKey_IsInvalid(t *testing.T) {
	t.Parallel()

	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := NewService([]byte("another-secret-that-is-32-chars!!"), time.Hour, WithClock(past)).Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewService([]byte(testSecret), time.Hour).Verify(tok)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewService([]byte("right-secret-right-secret-right-secret"), time.Hour).Issue(2)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewService([]byte("wrong-secret-wrong-secret-wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewService([]byte(testSecret), time.Hour)
	for _, raw := range []string{"", "not.a.jwt", "abc"} {
		if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("Verify(%q): expected ErrTokenInvalid, got %v", raw, err)
		}
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	tok := signRaw(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewService([]byte(testSecret), time.Hour).Verify(tok)
	if !errors.Is(err, domain.ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}

func TestVerify_MissingExpiry_IsInvalid(t *testing.T) {
	t.Parallel()

	tok := signRaw(t, jwt.SigningMethodHS256, jwt.MapClaims{"id": 5})

	_, err := NewService([]byte(testSecret), time.Hour).Verify(tok)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{"id": 5, "exp": time.Now().Add(time.Hour).Unix()}

	hs512 := signRaw(t, jwt.SigningMethodHS512, claims)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	svc := NewService([]byte(testSecret), time.Hour)
	for _, tok := range []string{hs512, none} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	}
}

func TestVerify_FailuresAreUnauthorized(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := NewService([]byte(testSecret), time.Hour, WithClock(func() time.Time { return now }))
	expired, err := svc.Issue(5)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	now = now.Add(2 * time.Hour)

	noSubject := signRaw(t, jwt.SigningMethodHS256, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})

	for _, raw := range []string{"garbage", expired, noSubject} {
		if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("Verify(%q): expected ErrUnauthorized family, got %v", raw, err)
		}
	}
}

func TestNewService_DefaultTTL(t *testing.T) {
	t.Parallel()

	svc := NewService([]byte(testSecret), 0)
	if svc.ttl != DefaultTTL {
		t.Fatalf("ttl = %v, want %v", svc.ttl, DefaultTTL)
	}
}

func signRaw(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return s
}
