package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"

	"resumeforge/internal/config"
	"resumeforge/internal/delivery/http/handler"
	"resumeforge/internal/delivery/http/middleware"
	"resumeforge/internal/delivery/http/routes"
)

const version = "1.0.0"

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 12 * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c.Logger)
	NewRegistry(c).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
}

// NewRegistry builds the route registry from the container's usecases.
func NewRegistry(c *Container) *routes.Registry {
	return routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Config.App.AppName, version),
		handler.NewAnalyzeHandler(c.Analyzer, c.Jobs, c.Analyses, c.Logger),
		handler.NewUserHandler(c.Users, c.Jobs, c.Resumes, c.Dashboard),
		handler.NewJobHandler(c.Jobs),
		handler.NewResumeHandler(c.Resumes),
		handler.NewAnalysisHandler(c.Analyses),
		handler.NewJDFilesHandler(c.Snapshots),
	)
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
