package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAuthService(t *testing.T) {
	secret := "test-secret-key"
	service := NewAuthService(secret)

	if service == nil {
		t.Fatal("expected non-nil AuthService")
	}
	if string(service.jwtSecret) != secret {
		t.Errorf("expected secret %q, got %q", secret, string(service.jwtSecret))
	}
	if service.tokenDuration != 24*time.Hour {
		t.Errorf("expected token duration 24h, got %v", service.tokenDuration)
	}
}

func TestGenerateToken(t *testing.T) {
	service := NewAuthService("test-secret-key")

	token, err := service.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate generated token: %v", err)
	}

	if claims.SessionID != "session-123" {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, "session-123")
	}
	if claims.Issuer != "wfcgen" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "wfcgen")
	}
}

func TestGenerateToken_Expiration(t *testing.T) {
	service := NewAuthService("test-secret-key")

	before := time.Now().Truncate(time.Second)
	token, err := service.GenerateToken("session-123")
	after := time.Now().Add(time.Second).Truncate(time.Second)

	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	actualExpiry := claims.ExpiresAt.Time
	minExpiry := before.Add(24 * time.Hour)
	maxExpiry := after.Add(24 * time.Hour)

	if actualExpiry.Before(minExpiry) || actualExpiry.After(maxExpiry) {
		t.Errorf("token expiry = %v, expected between %v and %v", actualExpiry, minExpiry, maxExpiry)
	}

	if claims.IssuedAt.Time.Before(before) || claims.IssuedAt.Time.After(after) {
		t.Errorf("token IssuedAt = %v, expected between %v and %v", claims.IssuedAt.Time, before, after)
	}
}

func TestValidateToken(t *testing.T) {
	service := NewAuthService("test-secret-key")

	validToken, _ := service.GenerateToken("session-123")

	tests := []struct {
		name      string
		token     string
		wantErr   error
		wantClaim string
	}{
		{
			name:      "valid token",
			token:     validToken,
			wantErr:   nil,
			wantClaim: "session-123",
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   "not.a.valid.jwt.token",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "random string",
			token:   "randomgarbage123",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ValidateToken() unexpected error = %v", err)
			}
			if claims.SessionID != tt.wantClaim {
				t.Errorf("SessionID = %q, want %q", claims.SessionID, tt.wantClaim)
			}
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewAuthService("secret-one")
	service2 := NewAuthService("secret-two")

	token, err := service1.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = service2.ValidateToken(token)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken when validating with wrong secret, got %v", err)
	}
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := &AuthService{
		jwtSecret:     []byte("test-secret"),
		tokenDuration: -1 * time.Hour,
	}

	token, err := service.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = service.ValidateToken(token)
	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired for expired token, got %v", err)
	}
}

func TestValidateToken_WrongSigningMethod(t *testing.T) {
	service := NewAuthService("test-secret")

	claims := &Claims{
		SessionID: "session-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "wfcgen",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	_, err := service.ValidateToken(tokenString)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong signing method, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	service := NewAuthService("test-secret-key")

	originalToken, err := service.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("failed to generate original token: %v", err)
	}

	originalClaims, err := service.ValidateToken(originalToken)
	if err != nil {
		t.Fatalf("failed to validate original token: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	refreshedToken, err := service.RefreshToken(originalClaims)
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}

	refreshedClaims, err := service.ValidateToken(refreshedToken)
	if err != nil {
		t.Fatalf("failed to validate refreshed token: %v", err)
	}

	if refreshedClaims.SessionID != originalClaims.SessionID {
		t.Errorf("SessionID not preserved: got %q, want %q", refreshedClaims.SessionID, originalClaims.SessionID)
	}

	if !refreshedClaims.IssuedAt.Time.After(originalClaims.IssuedAt.Time) {
		t.Error("refreshed token should have later IssuedAt")
	}

	expectedExpiry := refreshedClaims.IssuedAt.Time.Add(24 * time.Hour)
	if !refreshedClaims.ExpiresAt.Time.Equal(expectedExpiry) {
		t.Errorf("refreshed token expiry = %v, expected %v", refreshedClaims.ExpiresAt.Time, expectedExpiry)
	}
}

func TestClaims_Structure(t *testing.T) {
	service := NewAuthService("test-secret")

	token, _ := service.GenerateToken("session-123")
	claims, _ := service.ValidateToken(token)

	if claims.SessionID == "" {
		t.Error("SessionID should not be empty")
	}
	if claims.ExpiresAt == nil {
		t.Error("ExpiresAt should not be nil")
	}
	if claims.IssuedAt == nil {
		t.Error("IssuedAt should not be nil")
	}
	if claims.Issuer == "" {
		t.Error("Issuer should not be empty")
	}
}
