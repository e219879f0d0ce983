package server

import (
	"moodgut-server/confs"
	"moodgut-server/db"
	httpHandler "moodgut-server/handlers/http"
	"moodgut-server/repositories"
	"moodgut-server/usecases"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	s := &Server{
		app: gin.Default(),
		db:  database,
	}

	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	s.app.Use(cors.New(config))

	s.app.LoadHTMLGlob(filepath.Join(templatesDir(), "*.html"))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	logRepo := repositories.NewDailyLogPgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	entryUseCase := usecases.NewEntryUseCase(logRepo)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(userUseCase)
	entryHandler := httpHandler.NewEntryHandler(entryUseCase)
	dashboardHandler := httpHandler.NewDashboardHandler(entryUseCase)

	// Public routes
	s.app.GET("/", authHandler.Home)
	s.app.GET("/register", authHandler.RegisterPage)
	s.app.POST("/register", authHandler.Register)
	s.app.GET("/login", authHandler.LoginPage)
	s.app.POST("/login", authHandler.Login)
	s.app.GET("/logout", authHandler.Logout)

	// Routes behind the session gate
	authed := s.app.Group("/", httpHandler.RequireAuth())
	{
		authed.GET("/add", entryHandler.AddPage)
		authed.POST("/add", entryHandler.Add)
		authed.GET("/dashboard", dashboardHandler.Dashboard)
	}

	return s
}

// templatesDir locates the templates directory whether the process runs
// from the repo root or a subdirectory (e.g. during tests).
func templatesDir() string {
	for _, c := range []string{"templates", "../templates", "../../templates"} {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			return filepath.Clean(c)
		}
	}
	return "templates"
}

// Engine exposes the configured router, mainly for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.app
}

func (s *Server) Start() error {
	return s.app.Run("0.0.0.0:" + confs.Port())
}
