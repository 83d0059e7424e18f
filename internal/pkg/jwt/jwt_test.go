package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken(user.User{
		ID:           "u-1",
		Email:        "manager@example.com",
		Role:         user.RoleManager,
		EmployeeID:   strPtr("e-1"),
		DepartmentID: strPtr("d-1"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	caller, err := CallerFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, user.Caller{UserID: "u-1", EmployeeID: "e-1", Role: user.RoleManager, DepartmentID: "d-1"}, caller)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("secret", "soon")
	_, _, err := svc.GenerateAccessToken(user.User{ID: "u-1", Role: user.RoleEmployee})
	assert.Error(t, err)
}

func TestCallerFromClaims_Invalid(t *testing.T) {
	_, err := CallerFromClaims(map[string]interface{}{"role": "EMPLOYEE"})
	assert.ErrorIs(t, err, ErrInvalidClaims)

	_, err = CallerFromClaims(map[string]interface{}{"user_id": "u-1", "role": "owner"})
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
