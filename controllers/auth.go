package controllers

import (
	"net/http"
	"time"

	"devforum-api/middleware"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = int(middleware.TokenLifetime / time.Second)

// IssueToken handles POST /jwt. It signs a long-lived credential for the
// identity the client asserts, sets it as an http-only cookie and also
// returns it in the body so bearer-header clients work against the same
// deployment.
func (ct *Controller) IssueToken(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	token, err := middleware.NewToken(ct.Secret, input.Email, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout handles GET /logout by expiring the token cookie.
func (ct *Controller) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
