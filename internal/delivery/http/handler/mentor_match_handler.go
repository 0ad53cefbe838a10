package handler

import (
	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MentorMatchHandler struct {
	uc usecase.MentorMatchingUsecase
}

func NewMentorMatchHandler(uc usecase.MentorMatchingUsecase) *MentorMatchHandler {
	return &MentorMatchHandler{uc: uc}
}

func (h *MentorMatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches/mentors")
	grp.Get("/", h.List)
	grp.Delete("/cache", h.InvalidateCache)
}

func (h *MentorMatchHandler) List(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var q dto.ListMentorMatchesQuery
	if err := c.Bind().Query(&q); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := dto.Validate(q); err != nil {
		return validationError(err)
	}

	matches, err := h.uc.RankMentors(c.Context(), userID, q.Limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.NewMentorMatchResponses(matches)
	return response.List(c, out, response.Meta{Count: len(out), Limit: q.Limit})
}

func (h *MentorMatchHandler) InvalidateCache(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Invalidate(c.Context(), userID); err != nil {
		return mapUsecaseError(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
