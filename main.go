package main

import (
	"context"
	"fmt"
	"gin-ratings/constants"
	"gin-ratings/controllers"
	_ "gin-ratings/docs"
	"gin-ratings/infra"
	"gin-ratings/middlewares"
	"gin-ratings/repositories"
	"gin-ratings/seeds"
	"gin-ratings/services"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const devSecretKey = "dev-secret-key"

func setupRouter(cfg *infra.Config, db *gorm.DB, store sessions.Store) *gin.Engine {
	secretKey := cfg.SecretKey
	if secretKey == "" {
		log.Println("SECRET_KEY is not set; using development secret")
		secretKey = devSecretKey
	}

	userRepository := repositories.NewUserRepository(db)
	roleRepository := repositories.NewRoleRepository(db)
	reviewRepository := repositories.NewReviewRepository(db)

	tokenService := services.NewTokenService(secretKey, cfg.TokenTTL)
	authService := services.NewAuthService(userRepository, tokenService)
	userService := services.NewUserService(userRepository, roleRepository)
	roleService := services.NewRoleService(roleRepository)
	reviewService := services.NewReviewService(reviewRepository, userRepository)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService, reviewService)
	roleController := controllers.NewRoleController(roleService)
	reviewController := controllers.NewReviewController(reviewService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Metrics())
	r.Use(corsMiddleware(cfg))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/", handleHealth)
	r.GET("/health", handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET(apiDocPath, handleAPIDoc)
	r.GET("/apidocs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(apiDocPath)))

	// セッション → トークン → ロールの順で検証する
	requireSession := middlewares.RequireSession(authService)
	requireToken := middlewares.RequireToken(authService)
	requireAdmin := middlewares.RoleBasedAccessControl(constants.RoleAdmin)

	authRouter := r.Group("/api/auth")
	authRouterWithSession := r.Group("/api/auth", requireSession)
	userRouterWithAuth := r.Group("/api/users", requireSession, requireToken)
	userRouterWithAdminAuth := r.Group("/api/users", requireSession, requireToken, requireAdmin)
	roleRouterWithAdminAuth := r.Group("/api/roles", requireSession, requireToken, requireAdmin)
	reviewRouterWithAdminAuth := r.Group("/api/review", requireSession, requireToken, requireAdmin)

	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)
	authRouterWithSession.GET("/profile", authController.Profile)

	userRouterWithAuth.GET("", userController.FindAll)
	userRouterWithAdminAuth.GET("/:id", userController.FindById)
	userRouterWithAdminAuth.GET("/:id/reviews", userController.FindReviews)
	userRouterWithAdminAuth.POST("", userController.Create)
	userRouterWithAdminAuth.PUT("/:id", userController.Update)
	userRouterWithAdminAuth.DELETE("/:id", userController.Delete)

	roleRouterWithAdminAuth.GET("", roleController.FindAll)
	roleRouterWithAdminAuth.GET("/:id", roleController.FindById)
	roleRouterWithAdminAuth.POST("", roleController.Create)
	roleRouterWithAdminAuth.PUT("/:id", roleController.Update)
	roleRouterWithAdminAuth.DELETE("/:id", roleController.Delete)

	reviewRouterWithAdminAuth.GET("", reviewController.FindAll)
	reviewRouterWithAdminAuth.GET("/:id", reviewController.FindById)
	reviewRouterWithAdminAuth.POST("", reviewController.Create)
	reviewRouterWithAdminAuth.PUT("/:id", reviewController.Update)
	reviewRouterWithAdminAuth.DELETE("/:id", reviewController.Delete)

	return r
}

func corsMiddleware(cfg *infra.Config) gin.HandlerFunc {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return cors.Default()
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middlewares.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middlewares.RequestIDHeader}
	return cors.New(corsConfig)
}

const apiDocPath = "/docs/openapi.json"

func handleAPIDoc(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		log.Printf("Read API doc error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var (
	globalDB   *gorm.DB
	dbReady    = make(chan struct{})
	dbInitOnce sync.Once
)

func initDB(cfg *infra.Config) *gorm.DB {
	db := infra.SetupDB(cfg)

	targetDBName := "ratings"

	// DB_NAME=postgres の場合は ratings データベースを作成して接続し直す
	if cfg.DBName == "postgres" {
		if err := ensureDatabase(db, targetDBName); err != nil {
			log.Printf("Failed to create database: %v", err)
		}

		log.Printf("Connecting to ratings database: host=%s, user=%s, dbname=%s, port=%s",
			cfg.DBHost, cfg.DBUser, targetDBName, cfg.DBPort)

		var err error
		db, err = gorm.Open(postgres.Open(infra.PostgresDSN(cfg, targetDBName)), &gorm.Config{TranslateError: true})
		if err != nil {
			panic(fmt.Sprintf("Failed to connect to ratings database: %v", err))
		}
		log.Printf("Successfully connected to database: %s", targetDBName)
	}

	// インメモリSQLiteは起動のたびに空なので常にマイグレーションする
	if cfg.AutoMigrate || cfg.DBName == "" {
		if err := infra.Migrate(db); err != nil {
			panic(fmt.Sprintf("Failed to migrate database: %v", err))
		}
	}

	if cfg.SeedData {
		if err := seeds.Seed(db); err != nil {
			panic(fmt.Sprintf("Failed to seed database: %v", err))
		}
	}

	return db
}

// ensureDatabase は name のデータベースが存在しなければ作成する
func ensureDatabase(db *gorm.DB, name string) error {
	var exists int
	if err := db.Raw("SELECT 1 FROM pg_database WHERE datname = ?", name).Scan(&exists).Error; err != nil {
		return fmt.Errorf("check database %s: %w", name, err)
	}
	if exists != 0 {
		return nil
	}
	if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", name)).Error; err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}
	log.Printf("Created database: %s", name)
	return nil
}

func main() {
	cfg, err := infra.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		runLambda(cfg)
		return
	}

	db := initDB(cfg)
	r := setupRouter(cfg, db, infra.NewSessionStore(cfg))

	srv := newServer(cfg.Port, r)

	go func() {
		log.Printf("Starting server on port %s (local environment)", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}

func newServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// runLambda はヘルスチェックに即応答しつつ、DB接続をバックグラウンドで行う
func runLambda(cfg *infra.Config) {
	log.Println("Lambda environment detected, initializing database asynchronously...")

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	var routerMutex sync.RWMutex
	var actualRouter *gin.Engine

	r.GET("/", handleHealth)
	r.GET("/health", handleHealth)

	handler := func(c *gin.Context) {
		select {
		case <-dbReady:
			routerMutex.Lock()
			if actualRouter == nil {
				actualRouter = setupRouter(cfg, globalDB, infra.NewSessionStore(cfg))
				log.Println("Router initialized with database connection")
			}
			router := actualRouter
			routerMutex.Unlock()
			router.ServeHTTP(c.Writer, c.Request)
		case <-time.After(10 * time.Second):
			log.Println("Database connection timeout")
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Database connection timeout"})
		}
	}

	r.NoRoute(handler)

	srv := newServer(cfg.Port, r)

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.Fatalf("Failed to listen on port %s: %v", cfg.Port, err)
	}
	go func() {
		log.Printf("Starting server on port %s (Lambda environment)", cfg.Port)
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	go func() {
		dbInitOnce.Do(func() {
			globalDB = initDB(cfg)
			close(dbReady)
			log.Println("Database connection established")
		})
	}()

	select {}
}
