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

// GetAnnouncements handles GET /announcementData, newest first.
func (ct *Controller) GetAnnouncements(c *gin.Context) {
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ct.DB.Announcements.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}
	defer cursor.Close(ctx)

	announcements := []models.Announcement{}
	if err := cursor.All(ctx, &announcements); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse announcements"})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement handles POST /announcement (admin only).
func (ct *Controller) CreateAnnouncement(c *gin.Context) {
	var input struct {
		AuthorName  string `json:"authorName" binding:"required"`
		AuthorImage string `json:"authorImage"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	announcement := models.Announcement{
		ID:          primitive.NewObjectID(),
		AuthorName:  input.AuthorName,
		AuthorImage: input.AuthorImage,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Announcements.InsertOne(ctx, announcement)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save announcement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}
