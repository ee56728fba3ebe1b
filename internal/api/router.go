package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/starlog/catalog-api/docs"
	"github.com/starlog/catalog-api/internal/api/handler"
	"github.com/starlog/catalog-api/internal/api/middleware"
	"github.com/starlog/catalog-api/internal/core/service"
	"github.com/starlog/catalog-api/internal/infrastructure/config"
	mongodb "github.com/starlog/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/starlog/catalog-api/internal/infrastructure/db/redis"
	"github.com/starlog/catalog-api/internal/infrastructure/queue"
	"github.com/starlog/catalog-api/internal/infrastructure/swapi"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	counters := mongodb.NewCounterRepository(db)
	userRepo := mongodb.NewUserRepository(db, counters)
	roleRepo := mongodb.NewRoleRepository(db, counters)
	filmRepo := mongodb.NewFilmRepository(db, counters)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, roleRepo, log)
	filmService := service.NewFilmService(filmRepo, log)

	swapiClient := swapi.NewClient(cfg.Swapi.BaseURL, cfg.Swapi.Timeout)
	syncDispatcher := queue.NewSyncDispatcher(cfg.SyncWorkers, filmService, log)
	syncLock := redisdb.NewSyncLock(rdb)
	syncService := service.NewCatalogSyncService(swapiClient, syncDispatcher, syncLock, log)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.Limit, cfg.Throttle.Window, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, throttle)
	userHandler := handler.NewUserHandler(userService)
	filmHandler := handler.NewFilmHandler(filmService, syncService)

	authenticated := middleware.Authenticate(tokenService)

	// --- Auth routes (public) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/user/create", userHandler.Create)

	// --- User routes (guarded per policy table) ---
	user := e.Group("/user", authenticated)
	user.PATCH("/update-role/:email", userHandler.UpdateRole,
		middleware.RequireRoles(policyFor("PATCH /user/update-role/:email")...))
	user.DELETE("/delete-role/:email", userHandler.DeleteRole,
		middleware.RequireRoles(policyFor("DELETE /user/delete-role/:email")...))
	user.DELETE("/delete/:id", userHandler.Delete,
		middleware.RequireRoles(policyFor("DELETE /user/delete/:id")...))

	// --- Film routes (guarded per policy table) ---
	film := e.Group("/film", authenticated)
	film.POST("/create", filmHandler.Create,
		middleware.RequireRoles(policyFor("POST /film/create")...))
	film.GET("/all", filmHandler.ListAll,
		middleware.RequireRoles(policyFor("GET /film/all")...))
	film.GET("/titles", filmHandler.ListTitles,
		middleware.RequireRoles(policyFor("GET /film/titles")...))
	film.POST("/sync", filmHandler.Sync,
		middleware.RequireRoles(policyFor("POST /film/sync")...))
	film.GET("/:id", filmHandler.GetByID,
		middleware.RequireRoles(policyFor("GET /film/:id")...))
	film.PATCH("/:id", filmHandler.Update,
		middleware.RequireRoles(policyFor("PATCH /film/:id")...))
	film.DELETE("/:id", filmHandler.Delete,
		middleware.RequireRoles(policyFor("DELETE /film/:id")...))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"mongodb": func(ctx context.Context) error { return db.Client().Ping(ctx, nil) },
		"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
