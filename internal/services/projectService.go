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

// ProjectInput is a partial project record as submitted by a client.
type ProjectInput struct {
	Category     *string   `json:"category"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	GithubURL    *string   `json:"githubUrl"`
	ProjectURL   *string   `json:"projectUrl"`
}

type ProjectService struct {
	coll store.Collection[models.Project]
}

func NewProjectService(s store.Store) *ProjectService {
	return &ProjectService{coll: s.Projects()}
}

// List returns all projects, oldest first.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.coll.FindAll(ctx)
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	if blank(in.Category) || blank(in.Title) || blank(in.Description) || in.Technologies == nil {
		return nil, &ValidationError{Message: "Missing required fields: category, title, description, and technologies (array)"}
	}

	githubURL := optional(in.GithubURL)
	if !models.ValidURL(githubURL) {
		return nil, &ValidationError{Message: "Validation error", Detail: "GitHub URL must be a valid URL"}
	}
	projectURL := optional(in.ProjectURL)
	if !models.ValidURL(projectURL) {
		return nil, &ValidationError{Message: "Validation error", Detail: "Project URL must be a valid URL"}
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:           primitive.NewObjectID(),
		Category:     strings.TrimSpace(*in.Category),
		Title:        strings.TrimSpace(*in.Title),
		Description:  strings.TrimSpace(*in.Description),
		Technologies: trimmed(*in.Technologies),
		GithubURL:    githubURL,
		ProjectURL:   projectURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.coll.InsertOne(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ProjectInput) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if !blank(in.Category) {
		set["category"] = strings.TrimSpace(*in.Category)
	}
	if !blank(in.Title) {
		set["title"] = strings.TrimSpace(*in.Title)
	}
	if !blank(in.Description) {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Technologies != nil {
		set["technologies"] = trimmed(*in.Technologies)
	}
	if in.GithubURL != nil {
		u := strings.TrimSpace(*in.GithubURL)
		if !models.ValidURL(u) {
			return nil, &ValidationError{Message: "Validation error", Detail: "GitHub URL must be a valid URL"}
		}
		set["githubUrl"] = u
	}
	if in.ProjectURL != nil {
		u := strings.TrimSpace(*in.ProjectURL)
		if !models.ValidURL(u) {
			return nil, &ValidationError{Message: "Validation error", Detail: "Project URL must be a valid URL"}
		}
		set["projectUrl"] = u
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

func (s *ProjectService) Delete(ctx context.Context, id string) (*models.Project, error) {
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
