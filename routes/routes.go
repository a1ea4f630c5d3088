package routes

import (
	"time"

	"vetchat/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.POST("/message", chat.SendMessage)
		api.GET("/history/:sessionId", chat.GetHistory)
		api.GET("/conversations", chat.GetActiveConversations)
		api.DELETE("/conversation/:sessionId", chat.EndConversation)
	}
}

// RegisterAppointmentRoutes registers appointment administration endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, appt *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	{
		api.GET("", appt.GetAll)
		api.GET("/stats", appt.GetStats)
		api.GET("/session/:sessionId", appt.GetBySession)
		api.PATCH("/:id/status", appt.UpdateStatus)
	}
}

// RegisterHealthRoutes registers liveness and dependency health endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.Health)
	r.GET("/api/health", handlers.DetailedHealth)
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, chat *handlers.ChatHandler, appt *handlers.AppointmentHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterChatRoutes(r, chat)
	RegisterAppointmentRoutes(r, appt)
}
