package handlers

import (
	"mime/multipart"

	"github.com/pulseprimer/ecg_api/dto"
	"github.com/pulseprimer/ecg_api/model"
)

type ContentServiceInterface interface {
	GetLessonIndex() (*dto.LessonIndexResponse, error)
	GetLesson(lessonID string) (*model.Lesson, error)
	GetModuleLessons(moduleID string) ([]model.Lesson, error)
	SubmitTaskAnswer(lessonID, taskID string, req dto.SubmitAnswerRequest) (*dto.AnswerResultResponse, error)
	SubmitFinalAssessment(lessonID, taskID string, req dto.FinalAssessmentRequest) (*dto.AssessmentResultResponse, error)
}

type ProgressServiceInterface interface {
	StartSession(lessonID string) (*dto.SessionResponse, error)
	GetSession(sessionID string) (*dto.SessionResponse, error)
	Advance(sessionID string, req dto.AdvanceRequest) (*dto.SessionResponse, error)
	Revisit(sessionID string, slideIndex int) (*dto.SessionResponse, error)
}

type MediaServiceInterface interface {
	UploadLessonImage(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadLessonAudio(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadLessonVideo(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	ResolveMedia(key string) (*dto.MediaResolveResponse, error)
	ListLessonMedia(lessonID string) (*dto.MediaListResponse, error)
	DeleteMedia(key string) error
}
