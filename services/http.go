package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	docs "github.com/pulseprimer/ecg_api/docs"
	"github.com/pulseprimer/ecg_api/services/handlers"
	"github.com/pulseprimer/ecg_api/shared"
)

type HttpService struct {
	context.DefaultService

	contentSvc    *ContentService
	progressSvc   *ProgressService
	mediaSvc      *MediaService
	monitoringSvc *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	lessonHandler := handlers.NewLessonHandler(svc.contentSvc)
	progressHandler := handlers.NewProgressHandler(svc.progressSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	svc.app = svc.buildApp(lessonHandler, progressHandler, mediaHandler)

	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

// buildApp wires middleware and the route table. Split from Start so
// tests can drive the app in-process via app.Test.
func (svc *HttpService) buildApp(lessonHandler *handlers.LessonHandler, progressHandler *handlers.ProgressHandler, mediaHandler *handlers.MediaHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      SERVICE_NAME,
		JSONEncoder:  shared.JSONMarshal,
		JSONDecoder:  shared.JSONUnmarshal,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())

	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}

	app.Use(corsMiddleware())
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	//Validation endpoints
	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	v1.Get("/lessons", lessonHandler.GetLessons)
	v1.Get("/lessons/:lessonId", lessonHandler.GetLesson)
	v1.Get("/modules/:moduleId/lessons", lessonHandler.GetModuleLessons)

	v1.Post("/lessons/:lessonId/tasks/:taskId/answer", lessonHandler.SubmitTaskAnswer)
	v1.Post("/lessons/:lessonId/tasks/:taskId/assessment", lessonHandler.SubmitFinalAssessment)

	v1.Post("/lessons/:lessonId/sessions", progressHandler.StartSession)
	v1.Get("/sessions/:sessionId", progressHandler.GetSession)
	v1.Post("/sessions/:sessionId/advance", progressHandler.Advance)
	v1.Post("/sessions/:sessionId/revisit", progressHandler.Revisit)

	v1.Post("/lessons/:lessonId/media/:kind", mediaHandler.UploadLessonMedia)
	v1.Get("/lessons/:lessonId/media", mediaHandler.ListLessonMedia)
	v1.Get("/media/resolve", mediaHandler.ResolveMedia)
	v1.Delete("/media", mediaHandler.DeleteMedia)

	// Unmatched routes fall through to fiber's 404/405 errors, which
	// handleError renders as the shared JSON envelope.

	return app
}

// App exposes the configured fiber app for in-process testing.
func (svc *HttpService) App() *fiber.App {
	return svc.app
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// corsMiddleware answers preflights itself so OPTIONS gets a 200 with
// an empty body. Browsers accept 204 too, but some older embedded
// webviews the lesson player runs in do not.
func corsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).SendString("")
		}

		return c.Next()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code == fiber.StatusMethodNotAllowed {
			return shared.ResponseJSON(c, fiber.StatusMethodNotAllowed, "Method Not Allowed", nil)
		}
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
