package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/printadmin/storformat/internal/pkg/constants"
)

func TestAdminToken_RoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("s3cret", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := ParseAuthToken(token, "s3cret")
	if err != nil {
		t.Fatalf("ParseAuthToken: %v", err)
	}
	if claims.Subject != adminSubject {
		t.Fatalf("subject = %q", claims.Subject)
	}
}

func TestParseAuthToken_Rejects(t *testing.T) {
	valid, _ := GenerateAdminToken("s3cret", time.Hour, time.Now())
	expired, _ := GenerateAdminToken("s3cret", time.Minute, time.Now().Add(-time.Hour))

	tests := map[string]struct{ token, secret string }{
		"wrong secret": {token: valid, secret: "other"},
		"expired":      {token: expired, secret: "s3cret"},
		"garbage":      {token: "not-a-jwt", secret: "s3cret"},
	}
	for name, tt := range tests {
		if _, err := ParseAuthToken(tt.token, tt.secret); !errors.Is(err, constants.ErrUnauthorized) {
			t.Fatalf("%s: err = %v, want ErrUnauthorized", name, err)
		}
	}
}
