package apiHttp

import (
	"context"
	"net/http"
	"time"

	_ "github.com/csv-challenge/backend/docs"
	docsHandler "github.com/csv-challenge/backend/internal/api/http/internal/docs"
	internalV1 "github.com/csv-challenge/backend/internal/api/http/internal/v1"
	"github.com/csv-challenge/backend/internal/api/http/pages"
	"github.com/csv-challenge/backend/internal/cache"
	"github.com/csv-challenge/backend/internal/config"
	"github.com/csv-challenge/backend/internal/doctoken"
	"github.com/csv-challenge/backend/internal/service"
	"github.com/csv-challenge/backend/pkg/limiter"
	"github.com/csv-challenge/backend/pkg/logger"
	"github.com/csv-challenge/backend/pkg/validator"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	swaggerInstance = "internal"
	healthTimeout   = 2 * time.Second
)

type Handler struct {
	services *service.Services
	config   *config.Config
	docsGate *doctoken.Gate
	db       *sqlx.DB
	redis    redis.UniversalClient
}

func NewHandlers(
	services *service.Services,
	cfg *config.Config,
	docsGate *doctoken.Gate,
	db *sqlx.DB,
	rdb redis.UniversalClient,
) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
		docsGate: docsGate,
		db:       db,
		redis:    rdb,
	}
}

func (h *Handler) Init() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		limiter.Limit(h.config.Limiter.RPS, h.config.Limiter.Burst, h.config.Limiter.TTL),
		corsMiddleware(h.config.HttpServer.CORSOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if h.config.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName(swaggerInstance)))
	}

	router.GET("/healthz", h.health)

	pages.NewHandler().Init(router)
	docsHandler.NewHandler(h.docsGate, h.config.Docs, swaggerInstance).Init(router)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	internalHandlersV1.Init(router)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("health check: mysql unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	if err := cache.Ping(ctx, h.redis); err != nil {
		logger.Warn("health check: redis unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
