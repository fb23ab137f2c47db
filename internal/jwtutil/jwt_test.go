package jwtutil

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	j := New(Config{SigningKey: "secret", ExpirationHours: 1})

	token, err := j.GenerateToken("u1", "ahmed@test.com", "tourist")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := j.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "u1" || claims.UserType != "tourist" {
		t.Errorf("claims = %+v; want u1/tourist", claims)
	}
}

func TestValidateRejectsExpiredAndForeignTokens(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	j := New(Config{SigningKey: "secret", ExpirationHours: 1})
	j.now = func() time.Time { return issued }

	token, err := j.GenerateToken("u1", "ahmed@test.com", "tourist")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name string
		util *JWTUtil
	}{
		{
			name: "expired",
			util: &JWTUtil{config: j.config, now: func() time.Time { return issued.Add(2 * time.Hour) }},
		},
		{
			name: "wrong key",
			util: &JWTUtil{config: Config{SigningKey: "other", ExpirationHours: 1}, now: func() time.Time { return issued }},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.util.ValidateToken(token); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
