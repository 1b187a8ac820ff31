package jobs

import (
	"context"
	"log"
	"time"

	"devforum-api/database"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StartCleanup schedules the nightly sweep of comments and reports whose post
// no longer exists. The caller stops the returned cron on shutdown.
func StartCleanup(db *database.Mongo) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		if err := SweepOrphans(context.Background(), db); err != nil {
			log.Println("orphan sweep failed:", err)
		}
	})
	if err != nil {
		log.Fatal("failed to schedule cleanup job:", err)
	}
	c.Start()
	return c
}

// SweepOrphans deletes comments and reports referencing posts that are gone.
// Request handlers never do this check; it only happens here, offline.
func SweepOrphans(ctx context.Context, db *database.Mongo) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := db.Posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var ids []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &ids); err != nil {
		return err
	}
	liveIDs := make([]string, 0, len(ids))
	for _, doc := range ids {
		liveIDs = append(liveIDs, doc.ID.Hex())
	}

	// Comments and reports store the post id as its hex string.
	filter := bson.M{
		"postedId": bson.M{"$nin": liveIDs, "$exists": true, "$ne": ""},
	}

	comments, err := db.Comments.DeleteMany(ctx, filter)
	if err != nil {
		return err
	}
	reports, err := db.Reports.DeleteMany(ctx, filter)
	if err != nil {
		return err
	}

	if comments.DeletedCount > 0 || reports.DeletedCount > 0 {
		log.Printf("orphan sweep removed %d comments, %d reports",
			comments.DeletedCount, reports.DeletedCount)
	}
	return nil
}
