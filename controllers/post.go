package controllers

import (
	"net/http"
	"time"

	"devforum-api/models"
	"devforum-api/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetPosts handles GET /postedData?search=&tags=&page=&size=&sort=.
func (ct *Controller) GetPosts(c *gin.Context) {
	q := services.ParsePostQuery(c.Request.URL.Query())

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	posts, err := services.ListPosts(ctx, ct.DB.Posts, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPostCount handles GET /post-count?search=&tags=. Same filter as the
// listing, no paging.
func (ct *Controller) GetPostCount(c *gin.Context) {
	q := services.ParsePostQuery(c.Request.URL.Query())

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	count, err := services.CountPosts(ctx, ct.DB.Posts, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetPost handles GET /post/:id.
func (ct *Controller) GetPost(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	var post models.Post
	err = ct.DB.Posts.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /post.
func (ct *Controller) CreatePost(c *gin.Context) {
	var input struct {
		AuthorName  string `json:"authorName" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		AuthorImage string `json:"authorImage"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Tags        string `json:"tags" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	post := models.Post{
		ID:          primitive.NewObjectID(),
		AuthorName:  input.AuthorName,
		Email:       input.Email,
		AuthorImage: input.AuthorImage,
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		PostedTime:  time.Now(),
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Posts.InsertOne(ctx, post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// VotePost handles PATCH /posted/upVote/:id. Unknown ids yield a zero
// modified count, not an error.
func (ct *Controller) VotePost(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var input struct {
		Vote string `json:"vote" binding:"required,oneof=up down"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	field := "upVote"
	if input.Vote == "down" {
		field = "downVote"
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Posts.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update votes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.ModifiedCount})
}

// DeletePost handles DELETE /post/:id.
func (ct *Controller) DeletePost(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Posts.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// GetMyPosts handles GET /my-post/:email.
func (ct *Controller) GetMyPosts(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	cursor, err := ct.DB.Posts.Find(ctx, bson.M{"email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
