package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"devforum-api/models"
	"devforum-api/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateReport handles POST /report/upload. Admins get a best-effort mail;
// a mail failure never fails the request.
func (ct *Controller) CreateReport(c *gin.Context) {
	var input struct {
		PostedID  string `json:"postedId"`
		CommentID string `json:"commentId"`
		Comment   string `json:"comment"`
		Feedback  string `json:"feedback" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	report := models.Report{
		ID:        primitive.NewObjectID(),
		PostedID:  input.PostedID,
		CommentID: input.CommentID,
		Comment:   input.Comment,
		Feedback:  input.Feedback,
		Email:     input.Email,
		CreatedAt: time.Now(),
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Reports.InsertOne(ctx, report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	if admin := os.Getenv("ADMIN_EMAIL"); admin != "" {
		go func() {
			if err := utils.SendReportAlert(admin, report.Email, report.Feedback); err != nil {
				log.Println("report alert mail failed:", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

// GetReports handles GET /reports (admin only).
func (ct *Controller) GetReports(c *gin.Context) {
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	cursor, err := ct.DB.Reports.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// DeleteReport handles DELETE /report/deleted/:id.
func (ct *Controller) DeleteReport(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Reports.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}
