package app

import (
	"context"
	"fmt"
	"strings"

	"mentor-match/internal/config"
	"mentor-match/internal/delivery/http/handler"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/delivery/http/routes"
	v1 "mentor-match/internal/delivery/http/routes/v1"
	"mentor-match/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Log)

	auth := middleware.NewAuthMiddleware(c.JWT)
	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Cache),
		auth.Middleware(),
		v1.Handlers{
			MentorMatches: handler.NewMentorMatchHandler(c.MentorMatching),
			Opportunities: handler.NewOpportunityHandler(c.Applications),
			Readiness:     handler.NewReadinessHandler(c.Readiness),
			Trends:        handler.NewTrendsHandler(c.Trends),
			Events:        ws.NewHandler(c.Hub, nil),
		},
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, starts the background workers and returns
// a cleanup that stops them and releases resources.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	bgCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go c.Hub.Run(bgCtx)
	c.Ingestor.Start(bgCtx)

	cleanup := func() error {
		c.Ingestor.Stop()
		cancel()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(log)
	app.Use(errMw.Middleware())

	accessLog := middleware.NewAccessLogMiddleware(log)
	app.Use(accessLog.Middleware())
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
