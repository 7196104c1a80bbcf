package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/dive-demo-tour/api/internal/config"
	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin_PlaintextPassword_RoundTrip(t *testing.T) {
	svc := NewService(&config.Config{AdminPassword: "secret"})

	token, err := svc.Login(context.Background(), "secret")

	require.NoError(t, err)
	assert.True(t, svc.Verify(token))

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "admin:"))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(&config.Config{AdminPassword: "secret"})

	_, err := svc.Login(context.Background(), "wrong")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_BcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewService(&config.Config{
		AdminPassword:     "plain-secret",
		AdminPasswordHash: string(hash),
	})

	_, err = svc.Login(context.Background(), "plain-secret")
	assert.Error(t, err)

	token, err := svc.Login(context.Background(), "hashed-secret")
	require.NoError(t, err)
	assert.True(t, svc.Verify(token))
}

func TestLogin_NoPasswordConfigured(t *testing.T) {
	svc := NewService(&config.Config{})

	_, err := svc.Login(context.Background(), "anything")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotConfigured))
}

func TestVerify_RejectsMalformedTokens(t *testing.T) {
	svc := NewService(&config.Config{AdminPassword: "secret"})

	assert.False(t, svc.Verify("not-base64!!!"))
	assert.False(t, svc.Verify(base64.StdEncoding.EncodeToString([]byte("user:123:abc"))))
	assert.False(t, svc.Verify(""))
}
