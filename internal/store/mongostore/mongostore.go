// Package mongostore implements store.Store on the MongoDB driver.
package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hetpatel09/portfolio-api/internal/models"
	"github.com/hetpatel09/portfolio-api/internal/store"
)

type mongoStore struct {
	projects       *collection[models.Project]
	experiences    *collection[models.Experience]
	certifications *collection[models.Certification]
}

// New wraps db's content collections. Projects list oldest first,
// experiences and certifications newest first.
func New(db *mongo.Database) store.Store {
	return &mongoStore{
		projects:       &collection[models.Project]{coll: db.Collection("projects"), sortOrder: 1},
		experiences:    &collection[models.Experience]{coll: db.Collection("experiences"), sortOrder: -1},
		certifications: &collection[models.Certification]{coll: db.Collection("certifications"), sortOrder: -1},
	}
}

func (s *mongoStore) Projects() store.Collection[models.Project]             { return s.projects }
func (s *mongoStore) Experiences() store.Collection[models.Experience]       { return s.experiences }
func (s *mongoStore) Certifications() store.Collection[models.Certification] { return s.certifications }

type collection[T any] struct {
	coll      *mongo.Collection
	sortOrder int // 1 ascending, -1 descending on createdAt
}

func (c *collection[T]) FindAll(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: c.sortOrder}})
	cursor, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *collection[T]) InsertOne(ctx context.Context, doc *T) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

func (c *collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated T
	err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var deleted T
	err := c.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
