package auth

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("685b6c9d50a1b64e180f2db5", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != "685b6c9d50a1b64e180f2db5" {
		t.Errorf("Expected user id to round-trip, got %q", claims.UserID)
	}
}

func TestValidateJWTRejections(t *testing.T) {
	token, err := GenerateJWT("user-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	t.Run("wrong secret", func(t *testing.T) {
		if _, err := ValidateJWT(token, "other-secret"); err == nil {
			t.Error("Expected validation to fail with a different secret")
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if _, err := ValidateJWT("", "test-secret"); err == nil {
			t.Error("Expected validation to fail for an empty token")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateJWT("user-1", "test-secret", -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}
		if _, err := ValidateJWT(expired, "test-secret"); err == nil {
			t.Error("Expected validation to fail for an expired token")
		}
	})
}

func TestStripBearer(t *testing.T) {
	if got := StripBearer("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Errorf("Expected bare token, got %q", got)
	}
	if got := StripBearer("abc.def.ghi"); got != "abc.def.ghi" {
		t.Errorf("Expected unprefixed value unchanged, got %q", got)
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Error("Hash must not equal the plaintext password")
	}

	if !VerifyPassword(hash, "s3cret-pass") {
		t.Error("Expected correct password to verify")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Error("Expected wrong password to fail verification")
	}
}
