package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbName = "devForum"

// Mongo holds the client and one handle per collection. It is built once in
// main and passed to the controllers instead of living in package globals.
type Mongo struct {
	Client *mongo.Client

	Posts         *mongo.Collection
	Users         *mongo.Collection
	Announcements *mongo.Collection
	Payments      *mongo.Collection
	Comments      *mongo.Collection
	Reports       *mongo.Collection
	Feedback      *mongo.Collection
}

// Connect dials MongoDB, pings it and binds the devForum collections.
func Connect(uri string) (*Mongo, error) {
	if uri == "" {
		return nil, errors.New("MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &Mongo{
		Client:        client,
		Posts:         db.Collection("postedData"),
		Users:         db.Collection("users"),
		Announcements: db.Collection("announcements"),
		Payments:      db.Collection("payments"),
		Comments:      db.Collection("comments"),
		Reports:       db.Collection("reports"),
		Feedback:      db.Collection("feedback"),
	}, nil
}

// Disconnect closes the client. Safe to call on a nil receiver.
func (m *Mongo) Disconnect() error {
	if m == nil || m.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return m.Client.Disconnect(ctx)
}

// UserRole returns the stored role for an email, or "" when no user exists.
func (m *Mongo) UserRole(ctx context.Context, email string) (string, error) {
	var user struct {
		Role string `bson:"role"`
	}
	err := m.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
