package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelterhub/shelter-backend/dto"
	"github.com/shelterhub/shelter-backend/usecases"
	"github.com/shelterhub/shelter-backend/utils"
)

type EventUriInput struct {
	EventId string `uri:"event_id" binding:"required,uuid"`
}

func handleGetMatches(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var eventInput EventUriInput
		if err := c.ShouldBindUri(&eventInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewMatchingUsecase()
		matches, err := usecase.FindMatches(ctx, eventInput.EventId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"matches":       utils.Map(matches, dto.AdaptMatchDto),
			"total_matches": len(matches),
		})
	}
}

func handleGetRecommendations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var eventInput EventUriInput
		if err := c.ShouldBindUri(&eventInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewMatchingUsecase()
		recommendations, err := usecase.Recommend(ctx, eventInput.EventId)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"recommendations": utils.Map(recommendations, dto.AdaptRecommendationDto),
		})
	}
}

func handlePostAssignments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var eventInput EventUriInput
		if err := c.ShouldBindUri(&eventInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		var data dto.CreateAssignmentsBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewMatchingUsecase()
		result, err := usecase.Assign(ctx, eventInput.EventId, data.VolunteerIds)

		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"assignments": dto.AdaptAssignmentResultDto(result)})
	}
}
