package controllers

import (
	"context"
	"time"

	"devforum-api/database"
)

// Controller carries the storage handle and the token secret into every
// route handler. Built once in main.
type Controller struct {
	DB     *database.Mongo
	Secret []byte
}

func New(db *database.Mongo, secret []byte) *Controller {
	return &Controller{DB: db, Secret: secret}
}

func requestCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 5*time.Second)
}
