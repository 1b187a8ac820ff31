package controllers

import (
	"net/http"
	"time"

	"devforum-api/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateFeedback handles POST /feedback/upload.
func (ct *Controller) CreateFeedback(c *gin.Context) {
	var input struct {
		Feedback string `json:"feedback" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	feedback := models.Feedback{
		ID:        primitive.NewObjectID(),
		Feedback:  input.Feedback,
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: time.Now(),
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Feedback.InsertOne(ctx, feedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// GetFeedbacks handles GET /feedbacks (admin only), newest first.
func (ct *Controller) GetFeedbacks(c *gin.Context) {
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ct.DB.Feedback.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	defer cursor.Close(ctx)

	feedbacks := []models.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse feedback"})
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}
