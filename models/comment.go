package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment references its post by hex id. Nothing enforces that the post still
// exists; the nightly cleanup job sweeps orphans.
type Comment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PostedID  string             `json:"postedId" bson:"postedId"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
