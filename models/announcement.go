package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Announcement struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	AuthorName  string             `json:"authorName" bson:"authorName"`
	AuthorImage string             `json:"authorImage,omitempty" bson:"authorImage,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
