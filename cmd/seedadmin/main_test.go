package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/config"
	"mealmate/internal/models"
	"mealmate/internal/store"
)

type memAccounts struct {
	accounts map[string]models.Account
	users    map[primitive.ObjectID]models.User
}

func newMemAccounts() *memAccounts {
	return &memAccounts{accounts: map[string]models.Account{}, users: map[primitive.ObjectID]models.User{}}
}

func (m *memAccounts) FindAccountByEmail(_ context.Context, email string) (models.Account, error) {
	a, ok := m.accounts[email]
	if !ok {
		return models.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (m *memAccounts) InsertAccount(_ context.Context, a *models.Account) error {
	a.ID = primitive.NewObjectID()
	m.accounts[a.Email] = *a
	return nil
}

func (m *memAccounts) SetRole(_ context.Context, id primitive.ObjectID, role string) error {
	for email, a := range m.accounts {
		if a.ID == id {
			a.Role = role
			m.accounts[email] = a
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memAccounts) FindUserByAccount(_ context.Context, id primitive.ObjectID) (models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *memAccounts) InsertUser(_ context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	m.users[u.Account] = *u
	return nil
}

func TestEnsureAdminCreatesAccountAndProfile(t *testing.T) {
	accounts := newMemAccounts()

	account, err := ensureAdmin(context.Background(), accounts, " Chef@Example.com ", "secret123", "Head Chef", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "chef@example.com", account.Email)
	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.True(t, auth.CheckPassword(account.PasswordHash, "secret123"))

	profile := accounts.users[account.ID]
	assert.Equal(t, "Head Chef", profile.FullName)
	assert.EqualValues(t, models.DefaultCalorieGoal, profile.CalorieGoal)
}

func TestEnsureAdminPromotesExisting(t *testing.T) {
	accounts := newMemAccounts()
	existing := models.Account{Email: "cook@example.com", Role: models.RoleUser}
	require.NoError(t, accounts.InsertAccount(context.Background(), &existing))

	account, err := ensureAdmin(context.Background(), accounts, "cook@example.com", "", "Cook", time.Now())
	require.NoError(t, err)
	assert.Equal(t, existing.ID, account.ID)
	assert.Equal(t, models.RoleAdmin, accounts.accounts["cook@example.com"].Role)
}

func TestEnsureAdminRejectsWeakPassword(t *testing.T) {
	_, err := ensureAdmin(context.Background(), newMemAccounts(), "new@example.com", "short", "", time.Now())
	assert.Error(t, err)
}

func TestRunReturnsConfigErrorWithoutExiting(t *testing.T) {
	_, err := run(config.Config{}, "admin@example.com", "secret123", "Admin")
	require.Error(t, err)
}
