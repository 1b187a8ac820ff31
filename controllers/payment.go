package controllers

import (
	"net/http"
	"os"
	"time"

	"devforum-api/models"

	"github.com/gin-gonic/gin"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePaymentIntent handles POST /create-payment-intent: a straight
// passthrough to the payment provider, nothing is persisted here.
func (ct *Controller) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Amount int64  `json:"amount" binding:"required,gt=0"` // smallest currency unit
		Token  string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	client, err := omise.NewClient(
		os.Getenv("OMISE_PUBLIC_KEY"),
		os.Getenv("OMISE_SECRET_KEY"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment client init failed"})
		return
	}

	charge := &omise.Charge{}
	op := &operations.CreateCharge{
		Amount:   input.Amount,
		Currency: "usd",
		Card:     input.Token,
	}
	if err := client.Do(charge, op); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chargeId": charge.ID,
		"status":   charge.Status,
		"paid":     charge.Paid,
	})
}

// CreatePayment handles POST /payments: append-only record of a completed
// charge.
func (ct *Controller) CreatePayment(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Amount   int64  `json:"amount" binding:"required,gt=0"`
		ChargeID string `json:"chargeId" binding:"required"`
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	payment := models.Payment{
		ID:       primitive.NewObjectID(),
		Email:    input.Email,
		Amount:   input.Amount,
		ChargeID: input.ChargeID,
		Status:   input.Status,
		PaidAt:   time.Now(),
	}

	ctx, cancel := requestCtx(c.Request.Context())
	defer cancel()

	result, err := ct.DB.Payments.InsertOne(ctx, payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}
