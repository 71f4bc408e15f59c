// Package user serves account profiles and the admin user directory.
package user

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/models"
	"mealmate/internal/store"
)

// CustomerPageSize is the page size of the customer list when none is given.
const CustomerPageSize = 6

var ErrNotFound = errors.New("user not found")

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidationError carries the failing field names and reasons.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "missing or invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) FieldErrors() map[string]string { return e.Fields }

type Store interface {
	FindAccount(ctx context.Context, id primitive.ObjectID) (models.Account, error)
	FindUserByAccount(ctx context.Context, accountID primitive.ObjectID) (models.User, error)
	ListAccounts(ctx context.Context, role string, q store.ListQuery) ([]models.Account, int64, error)
	UsersByAccounts(ctx context.Context, accountIDs []primitive.ObjectID) (map[primitive.ObjectID]models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
}

// View joins an account with its profile.
type View struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Role         string      `json:"role"`
	AuthProvider string      `json:"authProvider"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	Profile      models.User `json:"profile"`
}

func newView(account models.Account, profile models.User) View {
	return View{
		ID:           account.ID.Hex(),
		Email:        account.Email,
		Role:         account.Role,
		AuthProvider: account.AuthProvider,
		IsActive:     account.IsActive,
		CreatedAt:    account.CreatedAt,
		Profile:      profile,
	}
}

// ProfileInput holds the fields a user may change on their own profile. Nil
// fields are left untouched.
type ProfileInput struct {
	FullName    *string
	Phone       *string
	CalorieGoal *float64
	ProteinGoal *float64
	FatGoal     *float64
	CarbGoal    *float64
}

func (in ProfileInput) Validate() error {
	fields := map[string]string{}
	if in.FullName != nil && strings.TrimSpace(*in.FullName) == "" {
		fields["fullName"] = "fullName cannot be empty"
	}
	if in.Phone != nil && !phonePattern.MatchString(strings.TrimSpace(*in.Phone)) {
		fields["phone"] = "Phone number must be exactly 10 digits"
	}
	goals := []struct {
		name  string
		value *float64
	}{
		{"calorieGoal", in.CalorieGoal},
		{"proteinGoal", in.ProteinGoal},
		{"fatGoal", in.FatGoal},
		{"carbGoal", in.CarbGoal},
	}
	for _, goal := range goals {
		if goal.value != nil && *goal.value <= 0 {
			fields[goal.name] = goal.name + " must be a positive number"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (in ProfileInput) empty() bool {
	return in.FullName == nil && in.Phone == nil && in.CalorieGoal == nil &&
		in.ProteinGoal == nil && in.FatGoal == nil && in.CarbGoal == nil
}

type Service struct {
	accounts Store
	now      func() time.Time
}

func NewService(accounts Store) *Service {
	return &Service{accounts: accounts, now: time.Now}
}

// Profile returns the caller's account and profile. A missing profile is
// reported with the default goals and is not persisted.
func (s *Service) Profile(ctx context.Context, principal auth.Principal) (View, error) {
	return s.Get(ctx, principal.AccountID)
}

// Get returns any account with its profile.
func (s *Service) Get(ctx context.Context, accountID primitive.ObjectID) (View, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return View{}, err
	}
	profile, err := s.profileOf(ctx, account)
	if err != nil {
		return View{}, err
	}
	return newView(account, profile), nil
}

// UpdateProfile applies the provided fields to the caller's profile, creating
// the profile first when the account has none.
func (s *Service) UpdateProfile(ctx context.Context, principal auth.Principal, in ProfileInput) (View, error) {
	if in.empty() {
		return View{}, &ValidationError{Fields: map[string]string{"body": "no profile fields provided"}}
	}
	if err := in.Validate(); err != nil {
		return View{}, err
	}

	account, err := s.findAccount(ctx, principal.AccountID)
	if err != nil {
		return View{}, err
	}
	profile, err := s.profileOf(ctx, account)
	if err != nil {
		return View{}, err
	}

	if in.FullName != nil {
		profile.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		profile.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.CalorieGoal != nil {
		profile.CalorieGoal = *in.CalorieGoal
	}
	if in.ProteinGoal != nil {
		profile.ProteinGoal = *in.ProteinGoal
	}
	if in.FatGoal != nil {
		profile.FatGoal = *in.FatGoal
	}
	if in.CarbGoal != nil {
		profile.CarbGoal = *in.CarbGoal
	}
	profile.UpdatedAt = s.now()

	if err := s.accounts.SaveUser(ctx, &profile); err != nil {
		return View{}, err
	}

	logrus.WithFields(logrus.Fields{
		"area":    "user",
		"account": account.ID.Hex(),
	}).Info("profile updated")
	return newView(account, profile), nil
}

// List pages through accounts of the given role (every role when empty)
// together with their profiles.
func (s *Service) List(ctx context.Context, role string, q store.ListQuery) ([]View, int64, error) {
	accounts, total, err := s.accounts.ListAccounts(ctx, role, q)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]primitive.ObjectID, len(accounts))
	for i, account := range accounts {
		ids[i] = account.ID
	}
	profiles, err := s.accounts.UsersByAccounts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	views := make([]View, len(accounts))
	for i, account := range accounts {
		profile, ok := profiles[account.ID]
		if !ok {
			profile = models.NewUser(account.ID, "", account.CreatedAt)
		}
		views[i] = newView(account, profile)
	}
	return views, total, nil
}

// Customers lists USER accounts, CustomerPageSize per page unless q says
// otherwise.
func (s *Service) Customers(ctx context.Context, q store.ListQuery) ([]View, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = CustomerPageSize
	}
	return s.List(ctx, models.RoleUser, q)
}

func (s *Service) findAccount(ctx context.Context, id primitive.ObjectID) (models.Account, error) {
	account, err := s.accounts.FindAccount(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, ErrNotFound
	}
	return account, err
}

func (s *Service) profileOf(ctx context.Context, account models.Account) (models.User, error) {
	profile, err := s.accounts.FindUserByAccount(ctx, account.ID)
	if errors.Is(err, store.ErrNotFound) {
		return models.NewUser(account.ID, "", account.CreatedAt), nil
	}
	return profile, err
}
