package services

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pulseprimer/ecg_api/dto"
	"github.com/pulseprimer/ecg_api/shared"
)

// MediaService stores lesson media in object storage and hands out
// short-lived presigned URLs. Lesson JSON only carries opaque media
// paths; this service is where those paths become fetchable.
type MediaService struct {
	context.DefaultService
	registrySvc *RegistryService
	minioSvc    *MinIOService
}

const MEDIA_SVC = "media_svc"

const presignExpiry = 1 * time.Hour

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Start() error {
	svc.registrySvc = svc.Service(REGISTRY_SVC).(*RegistryService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// ==================== MEDIA UPLOAD METHODS ====================

func (svc *MediaService) UploadLessonImage(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP, SVG")
	}

	if file.Size > 5*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Image file too large. Maximum size: 5MB")
	}

	return svc.uploadFile(file, shared.MediaKindImage, lessonID)
}

func (svc *MediaService) UploadLessonAudio(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidAudioFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid audio file format. Supported: MP3, WAV, AAC")
	}

	if file.Size > 20*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Audio file too large. Maximum size: 20MB")
	}

	return svc.uploadFile(file, shared.MediaKindAudio, lessonID)
}

func (svc *MediaService) UploadLessonVideo(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidVideoFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid video file format. Supported: MP4, MOV, WEBM")
	}

	if file.Size > 100*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Video file too large. Maximum size: 100MB")
	}

	return svc.uploadFile(file, shared.MediaKindVideo, lessonID)
}

func (svc *MediaService) uploadFile(file *multipart.FileHeader, kind, lessonID string) (*dto.MediaUploadResponse, error) {
	if svc.registrySvc.Registry().Get(lessonID) == nil {
		return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Lesson %s not found", lessonID))
	}

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	id, _ := uuid.NewV7()
	objectKey := fmt.Sprintf("lessons/%s/%s/%s%s", lessonID, kind, id.String(), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := svc.minioSvc.UploadFile(objectKey, src, file.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to store media file")
	}

	log.WithFields(log.Fields{
		"lesson_id": lessonID,
		"kind":      kind,
		"key":       objectKey,
		"size":      file.Size,
	}).Info("Lesson media uploaded")

	return &dto.MediaUploadResponse{
		LessonID: lessonID,
		Kind:     kind,
		Key:      objectKey,
		FileName: file.Filename,
		FileType: contentType,
		FileSize: file.Size,
	}, nil
}

// ==================== MEDIA RESOLUTION ====================

func (svc *MediaService) ResolveMedia(key string) (*dto.MediaResolveResponse, error) {
	if key == "" || strings.Contains(key, "..") {
		return nil, shared.NewBadRequestError(nil, "Invalid media key")
	}

	if _, err := svc.minioSvc.GetFileInfo(key); err != nil {
		return nil, shared.NewNotFoundError(err, "Media not found")
	}

	url, err := svc.minioSvc.GetFileURL(key, presignExpiry)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate media URL")
	}

	return &dto.MediaResolveResponse{
		Key:       key,
		URL:       url,
		ExpiresIn: int(presignExpiry.Seconds()),
	}, nil
}

func (svc *MediaService) ListLessonMedia(lessonID string) (*dto.MediaListResponse, error) {
	if svc.registrySvc.Registry().Get(lessonID) == nil {
		return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Lesson %s not found", lessonID))
	}

	objects, err := svc.minioSvc.ListFiles(fmt.Sprintf("lessons/%s/", lessonID))
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to list lesson media")
	}

	keys := make([]string, 0, len(objects))
	for _, object := range objects {
		keys = append(keys, object.Key)
	}

	return &dto.MediaListResponse{
		LessonID: lessonID,
		Keys:     keys,
		Total:    len(keys),
	}, nil
}

func (svc *MediaService) DeleteMedia(key string) error {
	if key == "" || strings.Contains(key, "..") {
		return shared.NewBadRequestError(nil, "Invalid media key")
	}

	if err := svc.minioSvc.DeleteFile(key); err != nil {
		return shared.NewInternalError(err, "Failed to delete media file")
	}
	return nil
}

// ==================== FILE VALIDATION ====================

func (svc *MediaService) isValidImageFile(filename string) bool {
	return svc.hasExtension(filename, []string{".jpg", ".jpeg", ".png", ".webp", ".svg"})
}

func (svc *MediaService) isValidAudioFile(filename string) bool {
	return svc.hasExtension(filename, []string{".mp3", ".wav", ".aac"})
}

func (svc *MediaService) isValidVideoFile(filename string) bool {
	return svc.hasExtension(filename, []string{".mp4", ".mov", ".webm"})
}

func (svc *MediaService) hasExtension(filename string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
