package handler

import (
	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/jwt"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type OpportunityHandler struct {
	uc usecase.ApplicationsUsecase
}

func NewOpportunityHandler(uc usecase.ApplicationsUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

func (h *OpportunityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/opportunities")
	grp.Post("/match-preview", h.Preview)
	grp.Get("/:id/match", h.Match)
	grp.Post("/:id/apply", h.Apply)
	grp.Get("/:id/applications", middleware.RequireRole(jwt.RoleMentor), h.Applications)
}

func (h *OpportunityHandler) Match(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	oppID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	res, err := h.uc.ScoreForOpportunity(c.Context(), userID, oppID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponse(res))
}

func (h *OpportunityHandler) Preview(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.PreviewScoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := dto.Validate(req); err != nil {
		return validationError(err)
	}

	res, err := h.uc.PreviewScore(c.Context(), userID, req.ToRequirements())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponse(res))
}

// Apply answers 201 for a new application and 200 when the caller had
// already applied.
func (h *OpportunityHandler) Apply(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	oppID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	snap, err := h.uc.Apply(c.Context(), userID, oppID)
	if err != nil {
		return mapUsecaseError(err)
	}

	status, msg := fiber.StatusOK, response.MessageOK
	if snap.Created {
		status, msg = fiber.StatusCreated, response.MessageCreated
	}
	return response.Success(c, status, msg, dto.NewApplicationResponse(snap))
}

func (h *OpportunityHandler) Applications(c fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	oppID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	apps, err := h.uc.ListForOpportunity(c.Context(), userID, oppID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, dto.NewApplicationResponse(a))
	}
	return response.List(c, out, response.Meta{Count: len(out)})
}
