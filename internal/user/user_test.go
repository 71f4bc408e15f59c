package user

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/models"
	"mealmate/internal/store"
)

type fakeStore struct {
	accounts  []models.Account
	users     map[primitive.ObjectID]models.User
	lastRole  string
	lastQuery store.ListQuery
	saves     int
}

func newFakeStore(accounts ...models.Account) *fakeStore {
	return &fakeStore{accounts: accounts, users: map[primitive.ObjectID]models.User{}}
}

func (f *fakeStore) FindAccount(_ context.Context, id primitive.ObjectID) (models.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Account{}, store.ErrNotFound
}

func (f *fakeStore) FindUserByAccount(_ context.Context, accountID primitive.ObjectID) (models.User, error) {
	u, ok := f.users[accountID]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) ListAccounts(_ context.Context, role string, q store.ListQuery) ([]models.Account, int64, error) {
	f.lastRole, f.lastQuery = role, q
	out := make([]models.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		if role == "" || a.Role == role {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) UsersByAccounts(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	out := map[primitive.ObjectID]models.User{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (f *fakeStore) SaveUser(_ context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.Account] = *u
	f.saves++
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(v float64) *float64 { return &v }

func account(role, email string) models.Account {
	return models.Account{ID: primitive.NewObjectID(), Email: email, Role: role, IsActive: true}
}

func TestUpdateProfileRejectsPhoneWithoutTenDigits(t *testing.T) {
	acc := account(models.RoleUser, "an@example.com")
	fake := newFakeStore(acc)
	svc := NewService(fake)
	principal := auth.Principal{AccountID: acc.ID, Role: acc.Role}

	for _, phone := range []string{"090123456", "09012345678", "09-0123-456", "abcdefghij", ""} {
		_, err := svc.UpdateProfile(context.Background(), principal, ProfileInput{Phone: strPtr(phone)})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "phone %q", phone)
		assert.Equal(t, "Phone number must be exactly 10 digits", verr.Fields["phone"])
	}
	assert.Zero(t, fake.saves)
}

func TestUpdateProfileCreatesMissingProfileWithDefaults(t *testing.T) {
	acc := account(models.RoleUser, "an@example.com")
	fake := newFakeStore(acc)
	svc := NewService(fake)
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	view, err := svc.UpdateProfile(context.Background(), auth.Principal{AccountID: acc.ID},
		ProfileInput{FullName: strPtr("  Nguyễn Văn An "), Phone: strPtr("0901234567")})
	require.NoError(t, err)

	assert.Equal(t, "Nguyễn Văn An", view.Profile.FullName)
	assert.Equal(t, "0901234567", view.Profile.Phone)
	assert.EqualValues(t, models.DefaultCalorieGoal, view.Profile.CalorieGoal)
	assert.Equal(t, fixed, view.Profile.UpdatedAt)
	assert.False(t, view.Profile.ID.IsZero())
	assert.Equal(t, view.Profile, fake.users[acc.ID])
}

func TestUpdateProfileOnlyTouchesProvidedFields(t *testing.T) {
	acc := account(models.RoleUser, "an@example.com")
	fake := newFakeStore(acc)
	existing := models.NewUser(acc.ID, "An", time.Now())
	existing.ID = primitive.NewObjectID()
	existing.Phone = "0901234567"
	fake.users[acc.ID] = existing

	view, err := NewService(fake).UpdateProfile(context.Background(), auth.Principal{AccountID: acc.ID},
		ProfileInput{CalorieGoal: floatPtr(1800), CarbGoal: floatPtr(200)})
	require.NoError(t, err)

	assert.Equal(t, "An", view.Profile.FullName)
	assert.Equal(t, "0901234567", view.Profile.Phone)
	assert.EqualValues(t, 1800, view.Profile.CalorieGoal)
	assert.EqualValues(t, 200, view.Profile.CarbGoal)
	assert.EqualValues(t, models.DefaultProteinGoal, view.Profile.ProteinGoal)
	assert.Equal(t, existing.ID, view.Profile.ID)
}

func TestUpdateProfileValidation(t *testing.T) {
	acc := account(models.RoleUser, "an@example.com")
	svc := NewService(newFakeStore(acc))
	principal := auth.Principal{AccountID: acc.ID}

	_, err := svc.UpdateProfile(context.Background(), principal, ProfileInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "body")

	_, err = svc.UpdateProfile(context.Background(), principal,
		ProfileInput{FullName: strPtr("   "), FatGoal: floatPtr(0), ProteinGoal: floatPtr(-5)})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"fatGoal", "fullName", "proteinGoal"}, sortedKeys(verr.Fields))
}

func TestUpdateProfileUnknownAccount(t *testing.T) {
	_, err := NewService(newFakeStore()).UpdateProfile(context.Background(),
		auth.Principal{AccountID: primitive.NewObjectID()}, ProfileInput{FullName: strPtr("An")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSynthesizesMissingProfile(t *testing.T) {
	acc := account(models.RoleAdmin, "admin@example.com")
	svc := NewService(newFakeStore(acc))

	view, err := svc.Get(context.Background(), acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.ID.Hex(), view.ID)
	assert.Equal(t, "admin@example.com", view.Email)
	assert.Equal(t, acc.ID, view.Profile.Account)
	assert.EqualValues(t, models.DefaultFatGoal, view.Profile.FatGoal)

	_, err = svc.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListJoinsProfiles(t *testing.T) {
	an := account(models.RoleUser, "an@example.com")
	admin := account(models.RoleAdmin, "admin@example.com")
	fake := newFakeStore(an, admin)
	fake.users[an.ID] = models.NewUser(an.ID, "An", time.Now())

	views, total, err := NewService(fake).List(context.Background(), "", store.ListQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, views, 2)
	assert.Equal(t, "An", views[0].Profile.FullName)
	assert.Equal(t, admin.ID, views[1].Profile.Account)
	assert.Empty(t, fake.lastRole)
}

func TestCustomersDefaultsToUserRoleAndPageSize(t *testing.T) {
	fake := newFakeStore(account(models.RoleUser, "an@example.com"), account(models.RoleAdmin, "admin@example.com"))
	svc := NewService(fake)

	views, total, err := svc.Customers(context.Background(), store.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, views, 1)
	assert.Equal(t, models.RoleUser, fake.lastRole)
	assert.EqualValues(t, 1, fake.lastQuery.Page)
	assert.EqualValues(t, CustomerPageSize, fake.lastQuery.Limit)

	_, _, err = svc.Customers(context.Background(), store.ListQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, fake.lastQuery.Page)
	assert.EqualValues(t, 10, fake.lastQuery.Limit)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
