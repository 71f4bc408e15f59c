package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mealmate/internal/models"
)

const MenusCollection = "menus"

type Menus struct {
	coll *mongo.Collection
}

func NewMenus(db *mongo.Database) *Menus {
	return &Menus{coll: db.Collection(MenusCollection)}
}

func (s *Menus) FindByID(ctx context.Context, id primitive.ObjectID) (models.Menu, error) {
	var menu models.Menu
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&menu)
	return menu, translate(err, "find menu")
}

func (s *Menus) List(ctx context.Context, q ListQuery) ([]models.Menu, int64, error) {
	return listDocuments[models.Menu](ctx, s.coll, q.filter("name", "description"), q.findOptions(), "list menus")
}

func (s *Menus) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	return slugTaken(ctx, s.coll, slug, exclude)
}

func (s *Menus) Insert(ctx context.Context, menu *models.Menu) error {
	res, err := s.coll.InsertOne(ctx, menu)
	if err != nil {
		return translate(err, "insert menu")
	}
	menu.ID = insertedID(res)
	return nil
}

func (s *Menus) Replace(ctx context.Context, menu models.Menu) error {
	return replaceByID(ctx, s.coll, menu.ID, menu, "replace menu")
}

func (s *Menus) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.coll, id, "delete menu")
}

// DeleteMany removes the listed menus. A non-nil owner limits deletion to
// menus created by that account plus legacy menus without a creator.
func (s *Menus) DeleteMany(ctx context.Context, ids []primitive.ObjectID, owner *primitive.ObjectID) (int64, error) {
	if owner == nil {
		return deleteByIDs(ctx, s.coll, ids, "delete menus")
	}
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := s.coll.DeleteMany(ctx, deletableByOwner(ids, *owner))
	if err != nil {
		return 0, translate(err, "delete owned menus")
	}
	return res.DeletedCount, nil
}

// deletableByOwner matches the listed menus that owner created or that have
// no creator at all. Legacy menus are open to any editor, as in single delete.
func deletableByOwner(ids []primitive.ObjectID, owner primitive.ObjectID) bson.M {
	return bson.M{
		"_id": bson.M{"$in": ids},
		"$or": []bson.M{
			{"createdBy": owner},
			{"createdBy": nil},
		},
	}
}
