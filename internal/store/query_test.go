package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListQueryFilterEscapesSearch(t *testing.T) {
	q := ListQuery{Search: "bún (chay)", Tags: []string{"vegan"}, Types: []string{"lunch", "dinner"}}
	filter := q.filter("name", "description")

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected two $or clauses, got %#v", filter["$or"])
	}
	pattern := or[0]["name"].(primitive.Regex)
	if pattern.Pattern != `bún \(chay\)` || pattern.Options != "i" {
		t.Fatalf("unexpected regex %#v", pattern)
	}
	if _, ok := filter["type"].(bson.M)["$in"]; !ok {
		t.Fatalf("expected $in for multiple types, got %#v", filter["type"])
	}
	if _, ok := filter["tags"].(bson.M)["$all"]; !ok {
		t.Fatalf("expected $all for tags, got %#v", filter["tags"])
	}
}

func TestListQuerySingleTypeIsEquality(t *testing.T) {
	filter := ListQuery{Types: []string{"snack"}}.filter()
	if filter["type"] != "snack" {
		t.Fatalf("expected type equality, got %#v", filter["type"])
	}
}

func TestListQuerySkip(t *testing.T) {
	if got := (ListQuery{Page: 3, Limit: 10}).Skip(); got != 20 {
		t.Fatalf("expected skip 20, got %d", got)
	}
	if got := (ListQuery{}).Skip(); got != 0 {
		t.Fatalf("expected skip 0 without pagination, got %d", got)
	}
}

func TestDeletableByOwnerIncludesLegacyMenus(t *testing.T) {
	owner := primitive.NewObjectID()
	ids := []primitive.ObjectID{primitive.NewObjectID()}

	filter := deletableByOwner(ids, owner)
	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("expected owner and legacy clauses, got %#v", filter["$or"])
	}
	if or[0]["createdBy"] != owner {
		t.Fatalf("expected owner clause, got %#v", or[0])
	}
	if value, present := or[1]["createdBy"]; !present || value != nil {
		t.Fatalf("expected missing-creator clause, got %#v", or[1])
	}
}

func TestAccountFilterScopesRoleAndEmail(t *testing.T) {
	filter := accountFilter("USER", ListQuery{Search: "a+b@", Tags: []string{"ignored"}})
	if filter["role"] != "USER" {
		t.Fatalf("expected role filter, got %#v", filter)
	}
	if _, ok := filter["tags"]; ok {
		t.Fatalf("account filter must not carry tag clauses: %#v", filter)
	}
	or := filter["$or"].([]bson.M)
	if or[0]["email"].(primitive.Regex).Pattern != `a\+b@` {
		t.Fatalf("unexpected email pattern %#v", or[0])
	}

	if _, ok := accountFilter("", ListQuery{})["role"]; ok {
		t.Fatal("empty role must list every account")
	}
}
