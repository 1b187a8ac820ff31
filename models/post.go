package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	AuthorName  string             `json:"authorName" bson:"authorName"`
	Email       string             `json:"email" bson:"email"` // author email, used by the my-post lookup
	AuthorImage string             `json:"authorImage,omitempty" bson:"authorImage,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Tags        string             `json:"tags" bson:"tags"`
	UpVote      int                `json:"upVote" bson:"upVote"`
	DownVote    int                `json:"downVote" bson:"downVote"`
	PostedTime  time.Time          `json:"postedTime" bson:"postedTime"`
}
