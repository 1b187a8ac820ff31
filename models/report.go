package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report flags a comment (or a whole post) for the admins. Feedback carries
// the reporter's reason.
type Report struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PostedID  string             `json:"postedId,omitempty" bson:"postedId,omitempty"`
	CommentID string             `json:"commentId,omitempty" bson:"commentId,omitempty"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	Feedback  string             `json:"feedback" bson:"feedback"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
