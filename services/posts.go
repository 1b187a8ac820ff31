package services

import (
	"context"
	"net/url"
	"strconv"

	"devforum-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostQuery holds the client-supplied listing parameters. Page and Size are
// zero when absent or unparseable, which means "return everything".
type PostQuery struct {
	Search string
	Tags   string
	Page   int
	Size   int
	Sort   string
}

// ParsePostQuery reads search/tags/page/size/sort from the query string.
// Non-numeric or non-positive paging values degrade to the unpaged listing.
func ParsePostQuery(values url.Values) PostQuery {
	q := PostQuery{
		Search: values.Get("search"),
		Tags:   values.Get("tags"),
		Sort:   values.Get("sort"),
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if size, err := strconv.Atoi(values.Get("size")); err == nil && size > 0 {
		q.Size = size
	}
	return q
}

// Filter builds the predicate shared by the listing and the count. A search
// term wins over an exact tag match; the literal "null" means no tag filter.
func (q PostQuery) Filter() bson.M {
	if q.Search != "" {
		return bson.M{"tags": bson.M{"$regex": q.Search, "$options": "i"}}
	}
	if q.Tags != "" && q.Tags != "null" {
		return bson.M{"tags": q.Tags}
	}
	return bson.M{}
}

// FindOptions applies vote-count ordering and skip/limit paging.
func (q PostQuery) FindOptions() *options.FindOptions {
	opts := options.Find()
	switch q.Sort {
	case "asc":
		opts.SetSort(bson.D{{Key: "upVote", Value: 1}})
	case "desc":
		opts.SetSort(bson.D{{Key: "upVote", Value: -1}})
	}
	if q.Paged() {
		opts.SetSkip(int64((q.Page - 1) * q.Size))
		opts.SetLimit(int64(q.Size))
	}
	return opts
}

func (q PostQuery) Paged() bool {
	return q.Page > 0 && q.Size > 0
}

// ListPosts runs the filtered, ordered, paged listing. An empty slice is a
// valid result, not an error.
func ListPosts(ctx context.Context, posts *mongo.Collection, q PostQuery) ([]models.Post, error) {
	cursor, err := posts.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	result := []models.Post{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CountPosts counts with the identical filter and no paging, so total-pages
// math on the client stays consistent with the returned page.
func CountPosts(ctx context.Context, posts *mongo.Collection, q PostQuery) (int64, error) {
	return posts.CountDocuments(ctx, q.Filter())
}
