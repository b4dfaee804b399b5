// Package memstore is an in-memory store.Store used by tests.
package memstore

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hetpatel09/portfolio-api/internal/models"
	"github.com/hetpatel09/portfolio-api/internal/store"
)

type memStore struct {
	projects       *collection[models.Project]
	experiences    *collection[models.Experience]
	certifications *collection[models.Certification]
}

// New returns an empty in-memory store with the same per-collection
// ordering as the Mongo-backed one.
func New() store.Store {
	return &memStore{
		projects:       &collection[models.Project]{ascending: true},
		experiences:    &collection[models.Experience]{},
		certifications: &collection[models.Certification]{},
	}
}

func (s *memStore) Projects() store.Collection[models.Project]             { return s.projects }
func (s *memStore) Experiences() store.Collection[models.Experience]       { return s.experiences }
func (s *memStore) Certifications() store.Collection[models.Certification] { return s.certifications }

type collection[T any] struct {
	mu        sync.Mutex
	docs      []T
	ascending bool
}

// docID extracts the _id a document was stored under.
func docID[T any](doc *T) primitive.ObjectID {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return primitive.NilObjectID
	}
	id, _ := m["_id"].(primitive.ObjectID)
	return id
}

// applySet merges a $set-style document into doc through a bson round
// trip, mirroring what the server would do.
func applySet[T any](doc *T, set bson.M) (*T, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for k, v := range set {
		m[k] = v
	}
	raw, err = bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *collection[T]) FindAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.docs))
	if c.ascending {
		copy(out, c.docs)
		return out, nil
	}
	for i, doc := range c.docs {
		out[len(c.docs)-1-i] = doc
	}
	return out, nil
}

func (c *collection[T]) InsertOne(ctx context.Context, doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, *doc)
	return nil
}

func (c *collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.docs {
		if docID(&c.docs[i]) != id {
			continue
		}
		updated, err := applySet(&c.docs[i], set)
		if err != nil {
			return nil, err
		}
		c.docs[i] = *updated
		out := *updated
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (c *collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.docs {
		if docID(&c.docs[i]) != id {
			continue
		}
		deleted := c.docs[i]
		c.docs = append(c.docs[:i], c.docs[i+1:]...)
		return &deleted, nil
	}
	return nil, store.ErrNotFound
}
