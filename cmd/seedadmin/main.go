// Command seedadmin creates an ADMIN account, or promotes an existing one,
// and prints an access token for it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealmate/internal/auth"
	"mealmate/internal/config"
	"mealmate/internal/database"
	"mealmate/internal/models"
	"mealmate/internal/store"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password, required when the account is new")
	name := flag.String("name", "Administrator", "profile full name")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		fmt.Fprintln(os.Stderr, "usage: seedadmin -email admin@example.com -password secret123")
		os.Exit(2)
	}

	config.Load()
	token, err := run(config.AppEnv, *email, *password, *name)
	if err != nil {
		logrus.WithField("area", "SEED").Fatal(err)
	}
	fmt.Println(token)
}

func run(cfg config.Config, email, password, name string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		return "", err
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	accounts := store.NewAccounts(client.Database(cfg.DBName))
	account, err := ensureAdmin(ctx, accounts, email, password, name, time.Now())
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{"area": "SEED", "account": account.ID.Hex()}).Info("admin ready")
	return auth.IssueAccessToken(account, cfg.JWTSecret, cfg.AccessTokenTTL)
}

type accountStore interface {
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	InsertAccount(ctx context.Context, account *models.Account) error
	SetRole(ctx context.Context, id primitive.ObjectID, role string) error
	FindUserByAccount(ctx context.Context, accountID primitive.ObjectID) (models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
}

// ensureAdmin promotes the account registered under email, or creates it
// with a local password. Either way the account ends up with a profile.
func ensureAdmin(ctx context.Context, accounts accountStore, email, password, name string, now time.Time) (models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := accounts.FindAccountByEmail(ctx, email)
	switch {
	case err == nil:
		if account.Role != models.RoleAdmin {
			if err := accounts.SetRole(ctx, account.ID, models.RoleAdmin); err != nil {
				return models.Account{}, err
			}
			account.Role = models.RoleAdmin
		}
	case errors.Is(err, store.ErrNotFound):
		hash, err := auth.HashPassword(password)
		if err != nil {
			return models.Account{}, err
		}
		account = models.Account{
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			IsActive:     true,
			AuthProvider: models.ProviderLocal,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := accounts.InsertAccount(ctx, &account); err != nil {
			return models.Account{}, err
		}
	default:
		return models.Account{}, err
	}

	if _, err := accounts.FindUserByAccount(ctx, account.ID); errors.Is(err, store.ErrNotFound) {
		user := models.NewUser(account.ID, strings.TrimSpace(name), now)
		if err := accounts.InsertUser(ctx, &user); err != nil {
			return models.Account{}, err
		}
	} else if err != nil {
		return models.Account{}, err
	}
	return account, nil
}
