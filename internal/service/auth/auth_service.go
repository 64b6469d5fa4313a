package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/logger"
	"github.com/printadmin/storformat/internal/pkg/utils"
)

const DefaultTokenTTL = 12 * time.Hour

type LoginResponse struct {
	AuthToken string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service issues admin tokens for the shared admin secret.
type Service struct {
	secret func() string
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret func() string, ttl time.Duration) *Service {
	return &Service{secret: secret, ttl: ttl, now: time.Now}
}

func (svc *Service) LoginAdmin(ctx context.Context, secret string) (*LoginResponse, error) {
	expected := svc.secret()
	if expected == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) != 1 {
		logger.Warnf(ctx, "admin login rejected")
		return nil, constants.ErrUnauthorized
	}

	now := svc.now()
	token, err := utils.GenerateAdminToken(expected, svc.ttl, now)
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "admin login, token valid until %s", now.Add(svc.ttl).Format(time.RFC3339))
	return &LoginResponse{AuthToken: token, ExpiresAt: now.Add(svc.ttl)}, nil
}

// Authorize checks a token produced by LoginAdmin.
func (svc *Service) Authorize(raw string) error {
	if raw == "" {
		return constants.ErrUnauthorized
	}
	_, err := utils.ParseAuthToken(raw, svc.secret())
	return err
}
