package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"datewise/internal/api/controllers"
	"datewise/internal/infra"
	"datewise/pkg/middleware"
	"datewise/pkg/utils"
)

func ProvideRouter(
	cfg *infra.Config,
	logger *zap.Logger,
	placesController *controllers.PlacesController,
	itinerariesController *controllers.ItinerariesController,
	tagsController *controllers.TagController) *gin.Engine {

	gin.SetMode(cfg.Server.Mode)
	utils.ConfigureBindingValidator()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))

	RegisterRoutes(r, placesController, itinerariesController, tagsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	itinerariesController *controllers.ItinerariesController,
	tagsController *controllers.TagController) {

	r.GET("/health", controllers.Health)

	v1 := r.Group("/v1")

	placesGroup := v1.Group("/places")
	placesGroup.GET("/autocomplete", placesController.Autocomplete)
	placesGroup.GET("/details", placesController.Details)
	placesGroup.GET("/debug/candidates", placesController.Candidates)

	itinerariesGroup := v1.Group("/itineraries")
	itinerariesGroup.POST("/generate", itinerariesController.Generate)

	v1.GET("/tags", tagsController.ListAllTagsHandler)
}
