package controllers

import (
	"net/http"
	"time"

	"devforum-api/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertUser handles PUT /user. First login creates the record atomically via
// $setOnInsert; later calls return the stored record unchanged. Profile
// changes go through the admin PATCH instead.
func (ct *Controller) UpsertUser(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required"`
		Photo string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	update := bson.M{
		"$setOnInsert": bson.M{
			"email":     input.Email,
			"name":      input.Name,
			"photo":     input.Photo,
			"role":      models.RoleUser,
			"badge":     "bronze",
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := ct.DB.Users.FindOneAndUpdate(ctx, bson.M{"email": input.Email}, update, opts).Decode(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /user/:email. A missing user is a null body, not a 404.
func (ct *Controller) GetUser(c *gin.Context) {
	email := c.Param("email")

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	var user models.User
	err := ct.DB.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUsers handles GET /users.
func (ct *Controller) GetUsers(c *gin.Context) {
	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	cursor, err := ct.DB.Users.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PATCH /users/update/:email (admin only). Only role and
// badge are recognized; anything else in the body is dropped.
func (ct *Controller) UpdateUser(c *gin.Context) {
	email := c.Param("email")

	var input struct {
		Role  string `json:"role" binding:"omitempty,oneof=user admin"`
		Badge string `json:"badge" binding:"omitempty,oneof=bronze gold"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	fields := bson.M{}
	if input.Role != "" {
		fields["role"] = input.Role
	}
	if input.Badge != "" {
		fields["badge"] = input.Badge
	}
	if len(fields) == 0 {
		// Nothing to change; don't touch the record or its timestamp.
		c.JSON(http.StatusOK, gin.H{"matchedCount": 0, "modifiedCount": 0})
		return
	}
	fields["updatedAt"] = time.Now()

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}
