package v1

import (
	"mentor-match/internal/delivery/http/handler"
	"mentor-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	MentorMatches *handler.MentorMatchHandler
	Opportunities *handler.OpportunityHandler
	Readiness     *handler.ReadinessHandler
	Trends        *handler.TrendsHandler
	Events        *ws.Handler
}

func Register(r fiber.Router, auth fiber.Handler, h Handlers) {
	if r == nil || auth == nil {
		return
	}

	protected := r.Group("", auth)

	if h.MentorMatches != nil {
		h.MentorMatches.RegisterRoutes(protected)
	}
	if h.Opportunities != nil {
		h.Opportunities.RegisterRoutes(protected)
	}
	if h.Readiness != nil {
		h.Readiness.RegisterRoutes(protected)
	}
	if h.Trends != nil {
		h.Trends.RegisterRoutes(protected)
	}
	if h.Events != nil {
		h.Events.RegisterRoutes(protected)
	}
}
