package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/pulseprimer/ecg_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload Lesson Media
// @Description Uploads an image, audio or video asset for a lesson
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param lessonId path string true "Lesson key"
// @Param kind path string true "Media kind" Enums(image, audio, video)
// @Param file formData file true "Media file"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /api/v1/lessons/{lessonId}/media/{kind} [post]
func (h *MediaHandler) UploadLessonMedia(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")
	kind := c.Params("kind")

	file, err := c.FormFile("file")
	if err != nil {
		return shared.NewBadRequestError(err, "No media file provided")
	}

	response, err := h.upload(kind, lessonID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Created", response)
}

func (h *MediaHandler) upload(kind, lessonID string, file *multipart.FileHeader) (interface{}, error) {
	switch kind {
	case shared.MediaKindImage:
		return h.mediaSvc.UploadLessonImage(lessonID, file)
	case shared.MediaKindAudio:
		return h.mediaSvc.UploadLessonAudio(lessonID, file)
	case shared.MediaKindVideo:
		return h.mediaSvc.UploadLessonVideo(lessonID, file)
	default:
		return nil, shared.NewBadRequestError(nil, "Unknown media kind: "+kind)
	}
}

// @Summary List Lesson Media
// @Description Lists the stored media keys of a lesson
// @Tags media
// @Produce json
// @Param lessonId path string true "Lesson key"
// @Success 200 {object} shared.Response{data=dto.MediaListResponse}
// @Failure 404 {object} shared.Response
// @Router /api/v1/lessons/{lessonId}/media [get]
func (h *MediaHandler) ListLessonMedia(c *fiber.Ctx) error {
	lessonID := c.Params("lessonId")

	response, err := h.mediaSvc.ListLessonMedia(lessonID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", response)
}

// @Summary Resolve Media
// @Description Exchanges a stored media key for a short-lived download URL
// @Tags media
// @Produce json
// @Param key query string true "Media key"
// @Success 200 {object} shared.Response{data=dto.MediaResolveResponse}
// @Failure 400 {object} shared.Response
// @Failure 404 {object} shared.Response
// @Router /api/v1/media/resolve [get]
func (h *MediaHandler) ResolveMedia(c *fiber.Ctx) error {
	key := c.Query("key")

	response, err := h.mediaSvc.ResolveMedia(key)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", response)
}

// @Summary Delete Media
// @Description Removes a stored media asset
// @Tags media
// @Produce json
// @Param key query string true "Media key"
// @Success 200 {object} shared.Response
// @Failure 400 {object} shared.Response
// @Router /api/v1/media [delete]
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	key := c.Query("key")

	if err := h.mediaSvc.DeleteMedia(key); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", nil)
}
