package controllers

import (
	"net/http"
	"time"

	"devforum-api/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateComment handles POST /comments. The referenced post is not checked;
// the cleanup job deals with orphans.
func (ct *Controller) CreateComment(c *gin.Context) {
	var input struct {
		PostedID string `json:"postedId" binding:"required"`
		Comment  string `json:"comment" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		PostedID:  input.PostedID,
		Comment:   input.Comment,
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: time.Now(),
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Comments.InsertOne(ctx, comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// GetComments handles GET /comments, optionally filtered by ?postedId=.
func (ct *Controller) GetComments(c *gin.Context) {
	filter := bson.M{}
	if postedID := c.Query("postedId"); postedID != "" {
		filter["postedId"] = postedID
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	cursor, err := ct.DB.Comments.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// GetPostComments handles GET /comment/:id where :id is the post id, for the
// public post detail page.
func (ct *Controller) GetPostComments(c *gin.Context) {
	postedID := c.Param("id")

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	cursor, err := ct.DB.Comments.Find(ctx, bson.M{"postedId": postedID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}
