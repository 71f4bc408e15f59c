package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealmate/internal/models"
)

const (
	AccountsCollection = "accounts"
	UsersCollection    = "users"
)

// Accounts reads and writes the split Account/User pair.
type Accounts struct {
	accounts *mongo.Collection
	users    *mongo.Collection
}

func NewAccounts(db *mongo.Database) *Accounts {
	return &Accounts{
		accounts: db.Collection(AccountsCollection),
		users:    db.Collection(UsersCollection),
	}
}

func (s *Accounts) FindAccount(ctx context.Context, id primitive.ObjectID) (models.Account, error) {
	var account models.Account
	err := s.accounts.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	return account, translate(err, "find account")
}

func (s *Accounts) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	var account models.Account
	err := s.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	return account, translate(err, "find account by email")
}

func (s *Accounts) InsertAccount(ctx context.Context, account *models.Account) error {
	res, err := s.accounts.InsertOne(ctx, account)
	if err != nil {
		return translate(err, "insert account")
	}
	account.ID = insertedID(res)
	return nil
}

func (s *Accounts) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	res, err := s.accounts.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"role":      role,
		"isActive":  true,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return translate(err, "set account role")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Accounts) FindUserByAccount(ctx context.Context, accountID primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"account": accountID}).Decode(&user)
	return user, translate(err, "find user")
}

func (s *Accounts) InsertUser(ctx context.Context, user *models.User) error {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return translate(err, "insert user")
	}
	user.ID = insertedID(res)
	return nil
}

// ListAccounts pages through accounts newest first. An empty role lists every
// account; q.Search matches the email.
func (s *Accounts) ListAccounts(ctx context.Context, role string, q ListQuery) ([]models.Account, int64, error) {
	filter := accountFilter(role, q)
	return listDocuments[models.Account](ctx, s.accounts, filter, q.findOptions(), "list accounts")
}

func accountFilter(role string, q ListQuery) bson.M {
	filter := ListQuery{Search: q.Search}.filter("email")
	if role != "" {
		filter["role"] = role
	}
	return filter
}

// UsersByAccounts returns the profiles of the given accounts keyed by
// account id. Accounts without a profile are absent.
func (s *Accounts) UsersByAccounts(ctx context.Context, accountIDs []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	out := make(map[primitive.ObjectID]models.User, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}

	cursor, err := s.users.Find(ctx, bson.M{"account": bson.M{"$in": accountIDs}})
	if err != nil {
		return nil, translate(err, "find users")
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, translate(err, "decode users")
	}
	for _, user := range users {
		out[user.Account] = user
	}
	return out, nil
}

// SaveUser replaces the profile of user.Account, creating it when missing.
func (s *Accounts) SaveUser(ctx context.Context, user *models.User) error {
	res, err := s.users.ReplaceOne(ctx, bson.M{"account": user.Account}, user, options.Replace().SetUpsert(true))
	if err != nil {
		return translate(err, "save user")
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// Creator is the display form of an account: profile name plus login email.
type Creator struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// Creators resolves account ids to display names and emails. Unknown ids are
// left out of the map.
func (s *Accounts) Creators(ctx context.Context, accountIDs []primitive.ObjectID) (map[primitive.ObjectID]Creator, error) {
	out := make(map[primitive.ObjectID]Creator, len(accountIDs))
	if len(accountIDs) == 0 {
		return out, nil
	}

	cursor, err := s.accounts.Find(ctx, bson.M{"_id": bson.M{"$in": accountIDs}})
	if err != nil {
		return nil, translate(err, "find creators")
	}
	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, translate(err, "decode creators")
	}
	for _, account := range accounts {
		out[account.ID] = Creator{ID: account.ID, Email: account.Email}
	}

	cursor, err = s.users.Find(ctx, bson.M{"account": bson.M{"$in": accountIDs}})
	if err != nil {
		return nil, translate(err, "find creator profiles")
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, translate(err, "decode creator profiles")
	}
	for _, user := range users {
		creator, ok := out[user.Account]
		if !ok {
			continue
		}
		creator.Name = user.FullName
		out[user.Account] = creator
	}
	return out, nil
}
