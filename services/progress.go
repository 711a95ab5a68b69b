package services

import (
	ctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pulseprimer/ecg_api/dto"
	"github.com/pulseprimer/ecg_api/progression"
	"github.com/pulseprimer/ecg_api/shared"
)

// ProgressService checkpoints slide sessions in redis keyed by a
// server-issued session id. The sequencer itself is pure; this service
// owns loading, stepping and saving the session value.
type ProgressService struct {
	context.DefaultService

	registrySvc *RegistryService
	redisSvc    *RedisService
}

const PROGRESS_SVC = "progress_svc"

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
)

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Start() error {
	svc.registrySvc = svc.Service(REGISTRY_SVC).(*RegistryService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

func (svc *ProgressService) StartSession(lessonID string) (*dto.SessionResponse, error) {
	lesson := svc.registrySvc.Registry().Get(lessonID)
	if lesson == nil {
		return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Lesson %s not found", lessonID))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to create session id")
	}
	sessionID := id.String()

	session := progression.Start(progression.NewSession(lessonID))
	if err := svc.saveSession(sessionID, session); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"session_id": sessionID,
		"lesson_id":  lessonID,
	}).Info("Slide session started")

	return svc.toResponse(sessionID, session, len(lesson.Content.Slides)), nil
}

func (svc *ProgressService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	session, err := svc.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	lesson := svc.registrySvc.Registry().Get(session.LessonID)
	if lesson == nil {
		return nil, shared.NewInternalError(nil, "Session refers to an unknown lesson")
	}

	return svc.toResponse(sessionID, *session, len(lesson.Content.Slides)), nil
}

func (svc *ProgressService) Advance(sessionID string, req dto.AdvanceRequest) (*dto.SessionResponse, error) {
	session, err := svc.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	lesson := svc.registrySvc.Registry().Get(session.LessonID)
	if lesson == nil {
		return nil, shared.NewInternalError(nil, "Session refers to an unknown lesson")
	}

	obs := progression.Observation{
		WatchedSeconds:  req.WatchedSeconds,
		AnswerSubmitted: req.AnswerSubmitted,
	}

	next, err := progression.Advance(*session, lesson.Content.Slides, obs)
	if err != nil {
		if errors.Is(err, progression.ErrNotStarted) {
			return nil, shared.NewBadRequestError(err, "Session has not been started")
		}
		return nil, shared.NewInternalError(err, "Failed to advance session")
	}

	if err := svc.saveSession(sessionID, next); err != nil {
		return nil, err
	}

	return svc.toResponse(sessionID, next, len(lesson.Content.Slides)), nil
}

func (svc *ProgressService) Revisit(sessionID string, slideIndex int) (*dto.SessionResponse, error) {
	session, err := svc.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	lesson := svc.registrySvc.Registry().Get(session.LessonID)
	if lesson == nil {
		return nil, shared.NewInternalError(nil, "Session refers to an unknown lesson")
	}

	next, err := progression.Revisit(*session, slideIndex)
	if err != nil {
		if errors.Is(err, progression.ErrOutOfRange) {
			return nil, shared.NewBadRequestError(err, "Slide index is beyond reached progress")
		}
		return nil, shared.NewInternalError(err, "Failed to move session")
	}

	if err := svc.saveSession(sessionID, next); err != nil {
		return nil, err
	}

	return svc.toResponse(sessionID, next, len(lesson.Content.Slides)), nil
}

func (svc *ProgressService) loadSession(sessionID string) (*progression.Session, error) {
	rctx := ctx.Background()

	var session progression.Session
	if err := svc.redisSvc.GetJSON(rctx, sessionKeyPrefix+sessionID, &session); err != nil {
		return nil, shared.NewInternalError(err, "Failed to load session")
	}
	if session.LessonID == "" {
		return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Session %s not found", sessionID))
	}
	return &session, nil
}

func (svc *ProgressService) saveSession(sessionID string, session progression.Session) error {
	rctx := ctx.Background()

	if err := svc.redisSvc.Set(rctx, sessionKeyPrefix+sessionID, session, sessionTTL); err != nil {
		return shared.NewInternalError(err, "Failed to save session")
	}
	return nil
}

func (svc *ProgressService) toResponse(sessionID string, session progression.Session, totalSlides int) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionID:   sessionID,
		LessonID:    session.LessonID,
		State:       string(session.State),
		SlideIndex:  session.SlideIndex,
		Furthest:    session.Furthest,
		TotalSlides: totalSlides,
	}
}
