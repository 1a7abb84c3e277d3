package v1

import (
	"github.com/csv-challenge/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// @title CSV Challenge Registration API
// @version 1.0
// @description Team registration, email verification and result submissions for the CSV challenge.

// @BasePath /

type Handler struct {
	services *service.Services
}

func NewHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

// Init mounts every route under its absolute path; the API keeps no version prefix.
func (h *Handler) Init(router gin.IRouter) {
	h.initTeamsRoutes(router)
	h.initSubmissionsRoutes(router)
}
