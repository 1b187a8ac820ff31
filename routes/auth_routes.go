package routes

import (
	"net/http"

	"devforum-api/controllers"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers everything reachable without a credential.
func SetupPublicRoutes(r *gin.Engine, ct *controllers.Controller) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "DevForum server running")
	})

	r.POST("/jwt", ct.IssueToken)
	r.GET("/logout", ct.Logout)
	r.PUT("/user", ct.UpsertUser)

	r.GET("/postedData", ct.GetPosts)
	r.GET("/post-count", ct.GetPostCount)
	r.GET("/post/:id", ct.GetPost)
	r.GET("/comment/:id", ct.GetPostComments)
	r.GET("/announcementData", ct.GetAnnouncements)

	r.POST("/feedback/upload", ct.CreateFeedback)
}
