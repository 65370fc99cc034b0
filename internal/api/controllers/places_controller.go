package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"datewise/internal/models/request_models"
	"datewise/internal/services"
	"datewise/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
	logger        *zap.Logger
}

func NewPlacesController(placesService services.PlacesServiceInterface, logger *zap.Logger) *PlacesController {
	return &PlacesController{
		placesService: placesService,
		logger:        logger,
	}
}

func (p *PlacesController) Autocomplete(c *gin.Context) {
	var query request_models.PlacesAutocompleteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "INVALID_PLACES_AUTOCOMPLETE_QUERY",
			"Invalid places autocomplete query parameters", utils.FieldIssues(err))
		return
	}

	result, err := p.placesService.Autocomplete(c.Request.Context(), query.Q)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched place suggestions successfully")
}

func (p *PlacesController) Details(c *gin.Context) {
	var query request_models.PlaceDetailsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "INVALID_PLACE_DETAILS_QUERY",
			"Invalid place details query parameters", utils.FieldIssues(err))
		return
	}

	result, err := p.placesService.Details(c.Request.Context(), query.PlaceID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched place details successfully")
}

func (p *PlacesController) Candidates(c *gin.Context) {
	var query request_models.DebugPlaceCandidatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "INVALID_PLACE_CANDIDATES_QUERY",
			"Invalid places candidates query parameters", utils.FieldIssues(err))
		return
	}

	result, err := p.placesService.CandidatesNearOrigin(c.Request.Context(), query.OriginPlaceID)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched place candidates successfully")
}
