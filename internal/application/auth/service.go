// Package auth implements the admin session scheme: one shared password and
// an opaque, unsigned token. The token is base64("admin:<unix>:<random>") and
// verification only checks that it decodes and carries the prefix. This is a
// deliberately simple scheme for a single-admin site; the issue timestamp is
// embedded so an expiry check could be added at the verifier later.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/dive-demo-tour/api/internal/config"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

const tokenPrefix = "admin:"

type Service interface {
	// Login checks the shared admin password and returns a session token.
	Login(ctx context.Context, password string) (string, error)
	// Verify reports whether the token is a well-formed admin token.
	Verify(token string) bool
}

type service struct {
	password     string
	passwordHash string
}

func NewService(cfg *config.Config) Service {
	return &service{password: cfg.AdminPassword, passwordHash: cfg.AdminPasswordHash}
}

func (s *service) Login(_ context.Context, password string) (string, error) {
	if s.passwordHash == "" && s.password == "" {
		return "", fmt.Errorf("admin password not set: %w", domain.ErrNotConfigured)
	}
	if s.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
			return "", fmt.Errorf("wrong password: %w", domain.ErrUnauthorized)
		}
	} else if subtle.ConstantTimeCompare([]byte(s.password), []byte(password)) != 1 {
		return "", fmt.Errorf("wrong password: %w", domain.ErrUnauthorized)
	}

	raw := fmt.Sprintf("%s%d:%s", tokenPrefix, time.Now().Unix(), id.RandomToken(16))
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

func (s *service) Verify(token string) bool {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	return strings.HasPrefix(string(raw), tokenPrefix)
}
