package apiHttp

import (
	"context"
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nzwalks/backend/docs"
	"github.com/nzwalks/backend/pkg/auth"
	"github.com/nzwalks/backend/pkg/limiter"
	"github.com/nzwalks/backend/pkg/logger"
	"github.com/nzwalks/backend/pkg/validator"

	internalV1 "github.com/nzwalks/backend/internal/api/http/internal/v1"
	"github.com/nzwalks/backend/internal/config"
	"github.com/nzwalks/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	health       HealthChecks
}

func NewHandlers(
	services *service.Services,
	tokenManager auth.TokenManager,
	health HealthChecks,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		health:       health,
	}
}

// Init builds the engine. Background work started here stops when ctx is done.
func (h *Handler) Init(ctx context.Context, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(ctx, cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.AllowedOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))
	}

	router.GET("/health", h.healthCheck)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.tokenManager)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
