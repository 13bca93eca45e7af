//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"cafe-menu-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	userID, cafeID := uuid.New(), uuid.New()

	token, err := svc.GenerateToken(userID, cafeID, "manager")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, cafeID, claims.CafeID)
	assert.Equal(t, "manager", claims.Role)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	expired, err := jwt.NewService("secret", -time.Minute).GenerateToken(uuid.New(), uuid.New(), "viewer")
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	noCafe, err := svc.GenerateToken(uuid.New(), uuid.Nil, "viewer")
	require.NoError(t, err)
	_, err = svc.ValidateToken(noCafe)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
