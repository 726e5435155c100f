package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vibeqa/auth-service/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	email := "a@x.com"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, email, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("could not cast claims to TokenClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.Email != email {
		t.Errorf("expected email %s, got %s", email, claims.Email)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "a@x.com", time.Hour, "key"},
		{"empty email", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "a@x.com", 0, "key"},
		{"empty key", "iss", "a@x.com", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.email, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	email := "round@trip.dev"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, userID, email, time.Minute*5, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
	if parsedToken.Email != email {
		t.Errorf("expected email %s, got %s", email, parsedToken.Email)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, 1, "a@x.com", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	// Token that expired 1 second ago
	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Email: "a@x.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("issuer-a", 1, "a@x.com", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "issuer-b")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

// Flipping any character of a valid token must break verification.
func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	genToken, err := GenerateJWTToken(issuer, 7, "a@x.com", time.Hour, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	raw := genToken.SignedString
	for _, pos := range []int{0, len(raw) / 2, len(raw) - 1} {
		flipped := []byte(raw)
		if flipped[pos] == 'A' {
			flipped[pos] = 'B'
		} else {
			flipped[pos] = 'A'
		}

		if _, err := ValidateAndParseJWTToken(string(flipped), key, issuer); err == nil {
			t.Errorf("expected error for token tampered at position %d, got nil", pos)
		}
	}
}

// A token signed with a different algorithm must fail verification even when
// the correct secret is used.
func TestValidateAndParseJWTToken_AlgorithmPinning(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: "a@x.com",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign HS512 token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, key, issuer); err == nil {
		t.Error("expected error for HS512-signed token, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptyInput(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("", "key", "issuer"); err == nil {
		t.Error("expected error for empty token string, got nil")
	}
}

func TestParseBearerToken_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: true},
		{name: "empty remainder", header: "Bearer ", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "extra parts", header: "Bearer token extra-part", wantErr: true},
		{name: "no space", header: "invalid-token-123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for header %q, got token %q", tt.header, token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}
