package handler

import (
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TrendsHandler struct {
	uc usecase.TrendsUsecase
}

func NewTrendsHandler(uc usecase.TrendsUsecase) *TrendsHandler {
	return &TrendsHandler{uc: uc}
}

func (h *TrendsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/mentors/:id/trends/ingest", h.Ingest)
}

func (h *TrendsHandler) Ingest(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	mentorID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RequestIngest(c.Context(), userID, middleware.Role(c), mentorID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusAccepted, response.MessageAccepted, fiber.Map{"mentor_id": mentorID})
}
