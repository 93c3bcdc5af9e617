package routes

import (
	"context"

	_ "rocket_help/docs"
	"rocket_help/internal/adapter/http/handlers"
	"rocket_help/internal/adapter/http/middleware"
	"rocket_help/internal/adapter/persistence/repository"
	"rocket_help/internal/infrastructure/auth"
	"rocket_help/internal/infrastructure/cache"
	"rocket_help/internal/infrastructure/database"
	"rocket_help/internal/usecase"
	"rocket_help/pkg/config"
	"rocket_help/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg := config.New()
	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	if cfg.JWT.InsecureSecret() {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatal("JWT_SECRET_KEY is not set; refusing to sign tokens with the development secret")
		}
		log.Warn("JWT_SECRET_KEY is not set; using the development secret")
	}

	ctx := context.Background()
	ddb := database.ConnectDynamoDB(ctx, cfg.DynamoDB, log)
	rdb := cache.ConnectRedis(ctx, cfg.Redis, log)

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.DynamoDB.OrdersTable, log)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.DynamoDB.UsersTable)

	sessionUseCase := usecase.NewSessionUseCase(
		auth.NewPasswordProvider(userRepo),
		auth.NewJWTIssuer(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL),
		cache.NewRedisRevocationStore(rdb),
		userRepo,
		log,
	)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, log)

	router := NewRouter(cfg, log, handlers.NewSessionHandler(sessionUseCase, log), handlers.NewOrderHandler(orderUseCase, log), sessionUseCase)

	log.Info("starting http server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	sessionHandler *handlers.SessionHandler,
	orderHandler *handlers.OrderHandler,
	sessions usecase.ISessionUseCase,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.AccessLog(log), middleware.Recovery(log), middleware.RequestTimeout(cfg.Server.RequestTimeout))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	requireSession := middleware.RequireSession(sessions, log)
	addSessionRoutes(v1, sessionHandler, requireSession)
	addOrderRoutes(v1, orderHandler, requireSession)
	return router
}
