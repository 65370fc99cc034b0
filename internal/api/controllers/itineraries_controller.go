package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"datewise/internal/models/request_models"
	"datewise/internal/services"
	"datewise/pkg/utils"
)

type ItinerariesController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItinerariesController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItinerariesController {
	return &ItinerariesController{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

func (i *ItinerariesController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "INVALID_ITINERARY_REQUEST",
			"Invalid itinerary request", utils.FieldIssues(err))
		return
	}

	itinerary, err := i.itineraryService.Generate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, i.logger, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Generated itinerary successfully")
}
