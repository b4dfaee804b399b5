package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hetpatel09/portfolio-api/internal/models"
	"github.com/hetpatel09/portfolio-api/internal/store"
)

// CertificationInput is a partial certification record as submitted by
// a client.
type CertificationInput struct {
	Name            *string   `json:"name"`
	Organization    *string   `json:"organization"`
	VerificationURL *string   `json:"verificationUrl"`
	Description     *string   `json:"description"`
	Skills          *[]string `json:"skills"`
}

type CertificationService struct {
	coll store.Collection[models.Certification]
}

func NewCertificationService(s store.Store) *CertificationService {
	return &CertificationService{coll: s.Certifications()}
}

// List returns all certifications, newest first.
func (s *CertificationService) List(ctx context.Context) ([]models.Certification, error) {
	return s.coll.FindAll(ctx)
}

func (s *CertificationService) Create(ctx context.Context, in CertificationInput) (*models.Certification, error) {
	if blank(in.Name) || blank(in.Organization) || blank(in.Description) {
		return nil, &ValidationError{Message: "Missing required fields: name, organization, and description"}
	}

	verificationURL := optional(in.VerificationURL)
	if !models.ValidURL(verificationURL) {
		return nil, &ValidationError{Message: "Validation error", Detail: "Verification URL must be a valid URL"}
	}

	now := time.Now().UTC()
	certification := &models.Certification{
		ID:              primitive.NewObjectID(),
		Name:            strings.TrimSpace(*in.Name),
		Organization:    strings.TrimSpace(*in.Organization),
		VerificationURL: verificationURL,
		Description:     strings.TrimSpace(*in.Description),
		Skills:          trimmedOrEmpty(in.Skills),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.coll.InsertOne(ctx, certification); err != nil {
		return nil, err
	}
	return certification, nil
}

func (s *CertificationService) Update(ctx context.Context, id string, in CertificationInput) (*models.Certification, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if !blank(in.Name) {
		set["name"] = strings.TrimSpace(*in.Name)
	}
	if !blank(in.Organization) {
		set["organization"] = strings.TrimSpace(*in.Organization)
	}
	if in.VerificationURL != nil {
		u := strings.TrimSpace(*in.VerificationURL)
		if !models.ValidURL(u) {
			return nil, &ValidationError{Message: "Validation error", Detail: "Verification URL must be a valid URL"}
		}
		set["verificationUrl"] = u
	}
	if !blank(in.Description) {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Skills != nil {
		set["skills"] = trimmed(*in.Skills)
	}
	set["updatedAt"] = time.Now().UTC()

	updated, err := s.coll.UpdateByID(ctx, objID, set)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CertificationService) Delete(ctx context.Context, id string) (*models.Certification, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	deleted, err := s.coll.DeleteByID(ctx, objID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
