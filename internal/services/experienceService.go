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

// ExperienceInput is a partial experience record as submitted by a client.
type ExperienceInput struct {
	Title        *string   `json:"title"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	Achievements *[]string `json:"achievements"`
}

type ExperienceService struct {
	coll store.Collection[models.Experience]
}

func NewExperienceService(s store.Store) *ExperienceService {
	return &ExperienceService{coll: s.Experiences()}
}

// List returns all experiences, newest first.
func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	return s.coll.FindAll(ctx)
}

func (s *ExperienceService) Create(ctx context.Context, in ExperienceInput) (*models.Experience, error) {
	if blank(in.Title) || blank(in.Company) || blank(in.Location) || blank(in.StartDate) || blank(in.Description) {
		return nil, &ValidationError{Message: "Missing required fields: title, company, location, startDate, and description"}
	}

	now := time.Now().UTC()
	experience := &models.Experience{
		ID:           primitive.NewObjectID(),
		Title:        strings.TrimSpace(*in.Title),
		Company:      strings.TrimSpace(*in.Company),
		Location:     strings.TrimSpace(*in.Location),
		StartDate:    strings.TrimSpace(*in.StartDate),
		EndDate:      optional(in.EndDate),
		Description:  strings.TrimSpace(*in.Description),
		Technologies: trimmedOrEmpty(in.Technologies),
		Achievements: trimmedOrEmpty(in.Achievements),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.coll.InsertOne(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *ExperienceService) Update(ctx context.Context, id string, in ExperienceInput) (*models.Experience, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if !blank(in.Title) {
		set["title"] = strings.TrimSpace(*in.Title)
	}
	if !blank(in.Company) {
		set["company"] = strings.TrimSpace(*in.Company)
	}
	if !blank(in.Location) {
		set["location"] = strings.TrimSpace(*in.Location)
	}
	if !blank(in.StartDate) {
		set["startDate"] = strings.TrimSpace(*in.StartDate)
	}
	// An explicit empty endDate marks a current position, so it is
	// written whenever present.
	if in.EndDate != nil {
		set["endDate"] = strings.TrimSpace(*in.EndDate)
	}
	if !blank(in.Description) {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Technologies != nil {
		set["technologies"] = trimmed(*in.Technologies)
	}
	if in.Achievements != nil {
		set["achievements"] = trimmed(*in.Achievements)
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

func (s *ExperienceService) Delete(ctx context.Context, id string) (*models.Experience, error) {
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
