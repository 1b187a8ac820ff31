package routes

import (
	"os"
	"time"

	"devforum-api/controllers"
	"devforum-api/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires CORS and the full route table. Auth and admin gates are
// applied per group so every privileged route goes through the same policy.
func SetupRoutes(r *gin.Engine, ct *controllers.Controller) {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	SetupPublicRoutes(r, ct)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(ct.Secret))

	// Users
	auth.GET("/user/:email", ct.GetUser)
	auth.GET("/users", ct.GetUsers)

	// Posts
	auth.POST("/post", ct.CreatePost)
	auth.DELETE("/post/:id", ct.DeletePost)
	auth.PATCH("/posted/upVote/:id", ct.VotePost)
	auth.GET("/my-post/:email", ct.GetMyPosts)

	// Comments
	auth.GET("/comments", ct.GetComments)
	auth.POST("/comments", ct.CreateComment)

	// Reports
	auth.POST("/report/upload", ct.CreateReport)
	auth.DELETE("/report/deleted/:id", ct.DeleteReport)

	// Payments
	auth.POST("/create-payment-intent", ct.CreatePaymentIntent)
	auth.POST("/payments", ct.CreatePayment)

	admin := auth.Group("/")
	admin.Use(middleware.RequireAdmin(ct.DB.UserRole))

	admin.PATCH("/users/update/:email", ct.UpdateUser)
	admin.POST("/announcement", ct.CreateAnnouncement)
	admin.GET("/reports", ct.GetReports)
	admin.GET("/feedbacks", ct.GetFeedbacks)
}
