package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/printadmin/storformat/internal/pkg/constants"
)

func TestLoginAdmin(t *testing.T) {
	svc := NewService(func() string { return "s3cret" }, time.Hour)
	ctx := context.Background()

	if _, err := svc.LoginAdmin(ctx, "nope"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	resp, err := svc.LoginAdmin(ctx, "s3cret")
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}
	if err := svc.Authorize(resp.AuthToken); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if err := svc.Authorize(""); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("empty token err = %v", err)
	}
}

func TestLoginAdmin_EmptySecretNeverMatches(t *testing.T) {
	svc := NewService(func() string { return "" }, time.Hour)
	if _, err := svc.LoginAdmin(context.Background(), ""); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestAuthorize_RotatedSecret(t *testing.T) {
	secret := "old"
	svc := NewService(func() string { return secret }, time.Hour)

	resp, err := svc.LoginAdmin(context.Background(), "old")
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}

	secret = "new"
	if err := svc.Authorize(resp.AuthToken); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized after rotation", err)
	}
}
