package handler

import (
	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReadinessHandler struct {
	uc usecase.ReadinessUsecase
}

func NewReadinessHandler(uc usecase.ReadinessUsecase) *ReadinessHandler {
	return &ReadinessHandler{uc: uc}
}

func (h *ReadinessHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/students/me/readiness")
	grp.Get("/", h.Get)
	grp.Post("/refresh", h.Refresh)
}

func (h *ReadinessHandler) Get(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	rep, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReadinessResponse(rep))
}

func (h *ReadinessHandler) Refresh(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	rep, err := h.uc.Refresh(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewReadinessResponse(rep))
}
