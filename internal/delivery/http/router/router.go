// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arena/internal/delivery/http/middleware"
	"arena/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AthleteHandler        *handler.AthleteHandler
	CategoryHandler       *handler.CategoryHandler
	TrainingCenterHandler *handler.TrainingCenterHandler
	RequestIDMiddleware   *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	athleteHandler        *handler.AthleteHandler
	categoryHandler       *handler.CategoryHandler
	trainingCenterHandler *handler.TrainingCenterHandler
	requestIDMiddleware   *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		athleteHandler:        params.AthleteHandler,
		categoryHandler:       params.CategoryHandler,
		trainingCenterHandler: params.TrainingCenterHandler,
		requestIDMiddleware:   params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	athleteGroup := e.Group("/athletes")
	{
		athleteGroup.POST("", r.athleteHandler.Create)
		athleteGroup.GET("", r.athleteHandler.List)
		athleteGroup.GET("/:pk_id", r.athleteHandler.Get)
		athleteGroup.GET("/uuid/:id", r.athleteHandler.GetByUUID)
		athleteGroup.PUT("/:pk_id", r.athleteHandler.Update)
		athleteGroup.DELETE("/:pk_id", r.athleteHandler.Delete)

		athleteGroup.GET("/training-center/:id", r.athleteHandler.ListByTrainingCenter)
		athleteGroup.GET("/category/:id", r.athleteHandler.ListByCategory)
		athleteGroup.GET("/age-range/:min_age/:max_age", r.athleteHandler.ListByAgeRange)
	}

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:pk_id", r.categoryHandler.Get)
		categoryGroup.GET("/uuid/:id", r.categoryHandler.GetByUUID)
		categoryGroup.PUT("/:pk_id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:pk_id", r.categoryHandler.Delete)
	}

	trainingCenterGroup := e.Group("/training-centers")
	{
		trainingCenterGroup.POST("", r.trainingCenterHandler.Create)
		trainingCenterGroup.GET("", r.trainingCenterHandler.List)
		trainingCenterGroup.GET("/:pk_id", r.trainingCenterHandler.Get)
		trainingCenterGroup.GET("/uuid/:id", r.trainingCenterHandler.GetByUUID)
		trainingCenterGroup.PUT("/:pk_id", r.trainingCenterHandler.Update)
		trainingCenterGroup.DELETE("/:pk_id", r.trainingCenterHandler.Delete)

		trainingCenterGroup.GET("/owner/:owner", r.trainingCenterHandler.ListByOwner)
	}
}
