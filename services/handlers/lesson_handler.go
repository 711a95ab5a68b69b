package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pulseprimer/ecg_api/dto"
	"github.com/pulseprimer/ecg_api/shared"
)

type LessonHandler struct {
	contentSvc ContentServiceInterface
}

func NewLessonHandler(contentSvc ContentServiceInterface) *LessonHandler {
	return &LessonHandler{
		contentSvc: contentSvc,
	}
}

// @Summary List Lessons
// @Description Returns lightweight metadata for every published lesson
// @Tags lessons
// @Produce json
// @Success 200 {object} shared.Response{data=dto.LessonIndexResponse}
// @Router /api/v1/lessons [get]
func (h *LessonHandler) GetLessons(c *fiber.Ctx) error {
	index, err := h.contentSvc.GetLessonIndex()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", index)
}

// @Summary Get Lesson
// @Description Returns the full lesson content for a lesson key
// @Tags lessons
// @Produce json
// @Param lessonId path string true "Lesson key, e.g. module-1-lesson-2"
// @Success 200 {object} shared.Response{data=model.Lesson}
// @Failure 404 {object} shared.Response
// @Router /api/v1/lessons/{lessonId} [get]
func (h *LessonHandler) GetLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	lesson, err := h.contentSvc.GetLesson(lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lesson)
}

// @Summary List Module Lessons
// @Description Returns the lessons of one module ordered by position
// @Tags lessons
// @Produce json
// @Param moduleId path string true "Module ID, e.g. module-1"
// @Success 200 {object} shared.Response{data=[]model.Lesson}
// @Failure 404 {object} shared.Response
// @Router /api/v1/modules/{moduleId}/lessons [get]
func (h *LessonHandler) GetModuleLessons(c *fiber.Ctx) error {
	moduleID := c.Params("moduleId")

	lessons, err := h.contentSvc.GetModuleLessons(moduleID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", lessons)
}

// @Summary Submit Task Answer
// @Description Grades a single-answer task submission
// @Tags assessment
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson key"
// @Param taskId path string true "Task ID"
// @Param request body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} shared.Response{data=dto.AnswerResultResponse}
// @Failure 404 {object} shared.Response
// @Failure 409 {object} shared.Response
// @Failure 422 {object} shared.Response
// @Router /api/v1/lessons/{lessonId}/tasks/{taskId}/answer [post]
func (h *LessonHandler) SubmitTaskAnswer(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	taskID := c.Params("taskId")

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Answer is required")
	}

	result, err := h.contentSvc.SubmitTaskAnswer(lessonID, taskID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}

// @Summary Submit Final Assessment
// @Description Grades a full final assessment submission
// @Tags assessment
// @Accept json
// @Produce json
// @Param lessonId path string true "Lesson key"
// @Param taskId path string true "Task ID"
// @Param request body dto.FinalAssessmentRequest true "Answers payload"
// @Success 200 {object} shared.Response{data=dto.AssessmentResultResponse}
// @Failure 404 {object} shared.Response
// @Failure 409 {object} shared.Response
// @Failure 422 {object} shared.Response
// @Router /api/v1/lessons/{lessonId}/tasks/{taskId}/assessment [post]
func (h *LessonHandler) SubmitFinalAssessment(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	taskID := c.Params("taskId")

	var req dto.FinalAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, "Answers are required")
	}

	result, err := h.contentSvc.SubmitFinalAssessment(lessonID, taskID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", result)
}
