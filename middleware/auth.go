package middleware

import (
	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionUserKey is the session key holding the logged-in user's email.
const SessionUserKey = "user_email"

// AuthRequired resolves the logged-in user from the cookie session and puts
// the full user record in the gin context. Handlers behind it can assume a
// verified identity.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email, _ := session.Get(SessionUserKey).(string)
		if email == "" {
			utils.LogDebug("Unauthenticated request to %s", c.Request.URL.Path)
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
			utils.LogError("Session user not found: %s: %v", email, err)
			session.Clear()
			_ = session.Save()
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}

		if user.IsBlocked {
			utils.LogError("Blocked user attempted access: %s", email)
			utils.Forbidden(c, "Your account has been blocked")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AdminRequired gates admin console routes. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, utils.ErrUnauthorized)
			c.Abort()
			return
		}

		user, ok := userVal.(models.User)
		if !ok || !user.IsAdmin {
			utils.LogError("Non-admin user attempted admin access: %s", user.Email)
			utils.Forbidden(c, utils.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
