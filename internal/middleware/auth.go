package middleware

import (
	"net/http"

	"mediaboard/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const CurrentUserKey = "current_user"

const sessionUserID = "user_id"

// LoadUser maps the session's stored user id to a user record and sets it on
// the context. A session pointing at a vanished user is stale: it gets
// cleared here so the gate below sees a plain unauthenticated request.
func LoadUser(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionUserID)
		if userID != nil {
			var user models.User
			if err := database.First(&user, userID).Error; err == nil {
				c.Set(CurrentUserKey, &user)
			} else {
				session.Delete(sessionUserID)
				session.Save()
			}
		}
		c.Next()
	}
}

// AuthRequired gates mutation routes: no resolved user means 403 with an
// empty body. This is authentication only; ownership is checked at the
// store layer via compound id+owner lookups.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CurrentUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{})
			return
		}
		c.Next()
	}
}

// CurrentUser pulls the user LoadUser resolved for this request.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(CurrentUserKey); exists {
		return v.(*models.User)
	}
	return nil
}
