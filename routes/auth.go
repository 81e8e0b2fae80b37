package routes

import (
	"github.com/aaban-saad/nextgen-circuits-api/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB))
		authGroup.POST("/login", auth.Login(deps.DB))

		// exchanges a redirect code for a session cookie
		authGroup.GET("/callback", auth.Callback(deps.DB))
	}
}
