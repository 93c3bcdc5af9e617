package routes

import (
	"rocket_help/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSession = "/session"

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler, requireSession gin.HandlerFunc) {
	session := rg.Group(PathSession)
	{
		session.POST("", h.SignIn)
		session.GET("", requireSession, h.CurrentSession)
		session.DELETE("", requireSession, h.SignOut)
	}
}
