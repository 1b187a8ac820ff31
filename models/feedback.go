package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Feedback  string             `json:"feedback" bson:"feedback"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
