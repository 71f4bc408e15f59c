// Package store persists the mealmate documents in MongoDB.
package store

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// translate maps driver errors onto the package sentinels and wraps the rest
// with the operation name.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(ErrDuplicate, op)
	}
	return errors.Wrap(err, op)
}
