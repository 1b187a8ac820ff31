package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only snapshot of a completed membership charge.
type Payment struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Amount   int64              `json:"amount" bson:"amount"` // smallest currency unit
	ChargeID string             `json:"chargeId" bson:"chargeId"`
	Status   string             `json:"status" bson:"status"`
	PaidAt   time.Time          `json:"paidAt" bson:"paidAt"`
}
