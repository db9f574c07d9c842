package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PVL06/OC-P12-Epic/internal/api/handler"
	"github.com/PVL06/OC-P12-Epic/internal/api/middleware"
	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
	"github.com/PVL06/OC-P12-Epic/internal/core/service"
	mongodb "github.com/PVL06/OC-P12-Epic/internal/infrastructure/db/mongo"
	redisinfra "github.com/PVL06/OC-P12-Epic/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. rdb may be
// nil, in which case the login limiter and its readiness check are disabled.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, trail ports.AuditTrail, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("epicevents"))

	// --- Dependencies ---
	collabRepo := mongodb.NewCollaboratorRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	contractRepo := mongodb.NewContractRepository(db)
	eventRepo := mongodb.NewEventRepository(db)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisinfra.NewLoginLimiter(rdb)
	}

	authService := service.NewAuthService(collabRepo, limiter, jwtSecret, time.Hour, log)
	collabService := service.NewCollaboratorService(collabRepo, trail, log)
	clientService := service.NewClientService(clientRepo, collabRepo, trail, log)
	contractService := service.NewContractService(contractRepo, clientRepo, trail, log)
	eventService := service.NewEventService(eventRepo, contractRepo, trail, log)

	authHandler := handler.NewAuthHandler(authService)
	collabHandler := handler.NewCollaboratorHandler(collabService)
	clientHandler := handler.NewClientHandler(clientService)
	contractHandler := handler.NewContractHandler(contractService)
	eventHandler := handler.NewEventHandler(eventService)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Authenticated routes ---
	auth := middleware.Auth(jwtSecret)
	mgmt := middleware.RBAC(domain.RoleManagement)
	sales := middleware.RBAC(domain.RoleSales)
	mgmtSales := middleware.RBAC(domain.RoleManagement, domain.RoleSales)
	mgmtSupport := middleware.RBAC(domain.RoleManagement, domain.RoleSupport)

	g := e.Group("", auth)

	g.GET("/session", authHandler.Session)
	g.POST("/change_pwd", authHandler.ChangePassword)

	g.GET("/collab", collabHandler.List, mgmt)
	g.POST("/collab/create", collabHandler.Create, mgmt)
	g.POST("/collab/update/:id", collabHandler.Update, mgmt)
	g.GET("/collab/delete/:id", collabHandler.Delete, mgmt)

	g.GET("/client", clientHandler.List)
	g.POST("/client/create", clientHandler.Create, sales)
	g.POST("/client/update/:id", clientHandler.Update, mgmtSales)

	g.GET("/contract", contractHandler.List, mgmtSales)
	g.POST("/contract/create", contractHandler.Create, mgmt)
	g.POST("/contract/update/:id", contractHandler.Update, mgmtSales)

	g.GET("/event", eventHandler.List)
	g.POST("/event/create", eventHandler.Create, sales)
	g.POST("/event/update/:id", eventHandler.Update, mgmtSupport)

	return e
}
