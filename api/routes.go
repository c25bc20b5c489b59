package api

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhub/shelter-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))

	router := r.Use(credentialsMiddleware())

	router.GET("/events/:event_id/matches", handleGetMatches(uc))
	router.GET("/events/:event_id/recommendations", handleGetRecommendations(uc))
	router.POST("/events/:event_id/assignments", handlePostAssignments(uc))
}
