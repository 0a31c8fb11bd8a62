package utils

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "rahasia-test")

	token, err := GenerateJWTToken("k-1", "Budi", "karyawan", "budi", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ValidateJWTToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.IDKaryawan != "k-1" || claims.Role != "karyawan" || claims.Username != "budi" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTExpiredRejected(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "rahasia-test")

	token, err := GenerateJWTToken("k-1", "Budi", "karyawan", "budi", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ValidateJWTToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := GenerateJWTToken("k-1", "Budi", "karyawan", "budi", time.Now().Add(time.Hour)); err == nil {
		t.Fatal("missing secret must fail token generation")
	}
}
