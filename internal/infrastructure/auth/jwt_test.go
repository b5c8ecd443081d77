package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/iho/dualstream/internal/infrastructure/auth"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("owner")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "owner" {
		t.Errorf("expected subject owner, got %q", claims.Subject)
	}
}

func TestJWTManager_RejectsBadTokens(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Hour)

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage",
			token: func() string { return "not.a.token" },
		},
		{
			name: "wrong secret",
			token: func() string {
				other := auth.NewJWTManager("other-secret", time.Hour)
				tok, _ := other.Generate("owner")
				return tok
			},
		},
		{
			name: "expired",
			token: func() string {
				expired := auth.NewJWTManager("test-secret", -time.Hour)
				tok, _ := expired.Generate("owner")
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token()); !errors.Is(err, auth.ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
