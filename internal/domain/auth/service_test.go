package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/summarize-console/pkg/errors"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewService(Config{Enabled: true, Secret: "s3cret", TokenTTL: time.Hour}, newTestLogger())

	token, err := svc.IssueToken("operator", 0)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "operator", claims.Subject)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewService(Config{Secret: "one", TokenTTL: time.Hour}, newTestLogger())
	verifier := NewService(Config{Secret: "two", TokenTTL: time.Hour}, newTestLogger())

	token, err := issuer.IssueToken("operator", 0)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewService(Config{Secret: "s3cret", TokenTTL: time.Hour}, newTestLogger()).(*service)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.IssueToken("operator", time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestValidateRejectsForeignTokenType(t *testing.T) {
	secret := "s3cret"
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte(secret))
	require.NoError(t, err)

	svc := NewService(Config{Secret: secret, TokenTTL: time.Hour}, newTestLogger())
	_, err = svc.ValidateToken(context.Background(), signed)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidToken))
}

func TestIssueRequiresSubject(t *testing.T) {
	svc := NewService(Config{Secret: "s3cret", TokenTTL: time.Hour}, newTestLogger())
	_, err := svc.IssueToken("  ", 0)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
