// Package store defines the persistence surface for the three content
// collections. The server holds one Store for its lifetime, created at
// startup and passed to the handlers, so tests can substitute a fake.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hetpatel09/portfolio-api/internal/models"
)

// ErrNotFound is returned when an identifier resolves to no document.
var ErrNotFound = errors.New("document not found")

// Collection is the persistence surface for one content type.
type Collection[T any] interface {
	// FindAll returns every document in the collection's default order.
	FindAll(ctx context.Context) ([]T, error)
	// InsertOne persists doc as a new document.
	InsertOne(ctx context.Context, doc *T) error
	// UpdateByID applies set to the identified document and returns the
	// updated document, or ErrNotFound.
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error)
	// DeleteByID removes the identified document and returns its last
	// snapshot, or ErrNotFound.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error)
}

// Store bundles the three content collections.
type Store interface {
	Projects() Collection[models.Project]
	Experiences() Collection[models.Experience]
	Certifications() Collection[models.Certification]
}
