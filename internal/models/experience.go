package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience is one work-history entry. Dates are free-form display
// strings, not parsed; an empty EndDate means a current position.
type Experience struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Company      string             `bson:"company" json:"company"`
	Location     string             `bson:"location" json:"location"`
	StartDate    string             `bson:"startDate" json:"startDate"`
	EndDate      string             `bson:"endDate" json:"endDate"`
	Description  string             `bson:"description" json:"description"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
