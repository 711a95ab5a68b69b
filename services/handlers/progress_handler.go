package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pulseprimer/ecg_api/dto"
	"github.com/pulseprimer/ecg_api/shared"
)

type ProgressHandler struct {
	progressSvc ProgressServiceInterface
}

func NewProgressHandler(progressSvc ProgressServiceInterface) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

// @Summary Start Slide Session
// @Description Opens a slide session for a lesson, positioned on the first slide
// @Tags sessions
// @Produce json
// @Param lessonId path string true "Lesson key"
// @Success 201 {object} shared.Response{data=dto.SessionResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/lessons/{lessonId}/sessions [post]
func (h *ProgressHandler) StartSession(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	session, err := h.progressSvc.StartSession(lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", session)
}

// @Summary Get Slide Session
// @Description Returns the current position and state of a slide session
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/sessions/{sessionId} [get]
func (h *ProgressHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	session, err := h.progressSvc.GetSession(sessionID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}

// @Summary Advance Slide Session
// @Description Attempts to move forward one slide, applying any media or quiz gate
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body dto.AdvanceRequest true "Observed playback and answer state"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /api/v1/sessions/{sessionId}/advance [post]
func (h *ProgressHandler) Advance(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req dto.AdvanceRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Invalid advance payload")
	}

	session, err := h.progressSvc.Advance(sessionID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}

// @Summary Revisit Slide
// @Description Moves the session back to an already reached slide
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body dto.RevisitRequest true "Target slide index"
// @Success 200 {object} shared.Response{data=dto.SessionResponse}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /api/v1/sessions/{sessionId}/revisit [post]
func (h *ProgressHandler) Revisit(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var req dto.RevisitRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Slide index is required")
	}

	session, err := h.progressSvc.Revisit(sessionID, *req.SlideIndex)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", session)
}
