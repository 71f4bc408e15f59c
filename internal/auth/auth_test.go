package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/models"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	account := models.Account{ID: primitive.NewObjectID(), Email: "chef@mealmate.vn", Role: models.RoleAdmin}

	token, err := IssueAccessToken(account, "secret", time.Minute)
	require.NoError(t, err)

	principal, err := ParseAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, account.ID, principal.AccountID)
	assert.True(t, principal.IsAdmin())
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	account := models.Account{ID: primitive.NewObjectID(), Role: models.RoleUser}
	token, err := IssueAccessToken(account, "secret", time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "other")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	account := models.Account{ID: primitive.NewObjectID(), Role: models.RoleUser}
	token, err := IssueAccessToken(account, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPasswordRules(t *testing.T) {
	_, err := HashPassword("short1")
	assert.Error(t, err)

	_, err = HashPassword("onlyletters")
	assert.Error(t, err)

	hash, err := HashPassword("pho2024bo")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "pho2024bo"))
	assert.False(t, CheckPassword(hash, "pho2024"))
}
