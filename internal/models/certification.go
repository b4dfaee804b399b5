package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Certification struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Organization    string             `bson:"organization" json:"organization"`
	VerificationURL string             `bson:"verificationUrl" json:"verificationUrl"`
	Description     string             `bson:"description" json:"description"`
	Skills          []string           `bson:"skills" json:"skills"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
