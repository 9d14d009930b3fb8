package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathshala_backend/internals/configs"
	"pathshala_backend/internals/constants"
)

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	return claims
}

func TestAdminTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	adminID := uuid.New()
	now := time.Now()

	token, err := SignToken(BuildAdminClaims(adminID, constants.RoleSuperAdmin, now, time.Hour))
	require.NoError(t, err)

	claims := parseClaims(t, token)
	assert.Equal(t, adminID.String(), claims["id"])
	assert.Equal(t, adminID.String(), claims["sub"])
	assert.Equal(t, constants.RoleSuperAdmin, claims["role"])
	assert.Equal(t, float64(now.Add(time.Hour).Unix()), claims["exp"])
}

func TestUserTokenCarriesFamilySnapshot(t *testing.T) {
	configs.JWTSecret = "test-secret"
	userID := uuid.New()
	groupID := uuid.New()
	members := []string{userID.String(), uuid.New().String()}

	token, err := SignToken(BuildUserClaims(userID, &groupID, members, time.Now(), time.Hour))
	require.NoError(t, err)

	claims := parseClaims(t, token)
	assert.Equal(t, constants.RoleUser, claims["role"])
	assert.Equal(t, groupID.String(), claims["familyGroupId"])

	raw, ok := claims["familyMembers"].([]interface{})
	require.True(t, ok)
	require.Len(t, raw, 2)
	assert.Equal(t, members[0], raw[0])
}

func TestUserTokenWithoutGroupOmitsGroupClaim(t *testing.T) {
	configs.JWTSecret = "test-secret"
	userID := uuid.New()

	token, err := SignToken(BuildUserClaims(userID, nil, []string{userID.String()}, time.Now(), time.Hour))
	require.NoError(t, err)

	claims := parseClaims(t, token)
	_, present := claims["familyGroupId"]
	assert.False(t, present)
}

func TestSignTokenRequiresSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = old }()

	_, err := SignToken(BuildAdminClaims(uuid.New(), constants.RoleAdmin, time.Now(), time.Hour))
	assert.Error(t, err)
}
