package dto

// Slide session DTOs
type SessionResponse struct {
	SessionID   string `json:"sessionId"`
	LessonID    string `json:"lessonId"`
	State       string `json:"state"`
	SlideIndex  int    `json:"slideIndex"`
	Furthest    int    `json:"furthest"`
	TotalSlides int    `json:"totalSlides"`
}

type AdvanceRequest struct {
	WatchedSeconds  int  `json:"watchedSeconds" validate:"gte=0"`
	AnswerSubmitted bool `json:"answerSubmitted"`
}

func (a AdvanceRequest) Validate() error {
	return GetValidator().Struct(a)
}

type RevisitRequest struct {
	SlideIndex *int `json:"slideIndex" validate:"required,gte=0"`
}

func (r RevisitRequest) Validate() error {
	return GetValidator().Struct(r)
}
