package v1

import (
	"github.com/nzwalks/backend/internal/service"
	"github.com/nzwalks/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title NZ Walks API
// @version 1.0
// @description Regions API for the NZ Walks application

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initRegionsRoutes(api)
}
