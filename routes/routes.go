package routes

import (
	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware, the session store and all route groups.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(utils.RecoveryMiddleware())
	r.Use(utils.RequestIDMiddleware())
	r.Use(utils.LoggerMiddleware())
	r.Use(utils.CORSMiddleware())
	r.Use(utils.SecurityHeadersMiddleware())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   utils.SessionMaxAge,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("hotel_session", store))

	r.Static("/static", "./static")

	SetupUserRoutes(r)
	SetupAdminRoutes(r)

	return r
}
