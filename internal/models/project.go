package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// urlPattern matches the values accepted for optional link fields.
var urlPattern = regexp.MustCompile(`^https?://.+`)

// ValidURL reports whether v is empty or a well-formed http(s) URL.
// Optional link fields are stored as empty strings when unset.
func ValidURL(v string) bool {
	return v == "" || urlPattern.MatchString(v)
}

type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category     string             `bson:"category" json:"category"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	GithubURL    string             `bson:"githubUrl" json:"githubUrl"`
	ProjectURL   string             `bson:"projectUrl" json:"projectUrl"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
