package dto

// Media upload DTOs
type MediaUploadResponse struct {
	LessonID string `json:"lessonId"`
	Kind     string `json:"kind"`
	Key      string `json:"key"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

type MediaResolveResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

type MediaListResponse struct {
	LessonID string   `json:"lessonId"`
	Keys     []string `json:"keys"`
	Total    int      `json:"total"`
}
