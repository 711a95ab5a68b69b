package services

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/pulseprimer/ecg_api/dto"
	"github.com/pulseprimer/ecg_api/model"
	"github.com/pulseprimer/ecg_api/services/handlers"
	"github.com/pulseprimer/ecg_api/shared"
)

type stubContentService struct {
	lessons map[string]*model.Lesson
}

func (s *stubContentService) GetLessonIndex() (*dto.LessonIndexResponse, error) {
	return &dto.LessonIndexResponse{TotalLessons: len(s.lessons)}, nil
}

func (s *stubContentService) GetLesson(lessonID string) (*model.Lesson, error) {
	if lesson, ok := s.lessons[lessonID]; ok {
		copied := *lesson
		copied.ID = lessonID
		return &copied, nil
	}
	return nil, shared.NewNotFoundError(nil, "Lesson "+lessonID+" not found")
}

func (s *stubContentService) GetModuleLessons(moduleID string) ([]model.Lesson, error) {
	var out []model.Lesson
	for _, lesson := range s.lessons {
		if lesson.ModuleID == moduleID {
			out = append(out, *lesson)
		}
	}
	if len(out) == 0 {
		return nil, shared.NewNotFoundError(nil, "Module "+moduleID+" has no lessons")
	}
	return out, nil
}

func (s *stubContentService) SubmitTaskAnswer(lessonID, taskID string, req dto.SubmitAnswerRequest) (*dto.AnswerResultResponse, error) {
	if _, ok := s.lessons[lessonID]; !ok {
		return nil, shared.NewNotFoundError(nil, "Lesson "+lessonID+" not found")
	}
	return &dto.AnswerResultResponse{TaskID: taskID, Correct: *req.Answer == 0}, nil
}

func (s *stubContentService) SubmitFinalAssessment(lessonID, taskID string, req dto.FinalAssessmentRequest) (*dto.AssessmentResultResponse, error) {
	if len(req.Answers) != 2 {
		return nil, shared.NewUnprocessableError(nil, "Submission does not match the task structure")
	}
	return &dto.AssessmentResultResponse{TaskID: taskID, Passed: true}, nil
}

type stubProgressService struct{}

func (s *stubProgressService) StartSession(lessonID string) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{SessionID: "sess-1", LessonID: lessonID, State: "viewing"}, nil
}

func (s *stubProgressService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	return nil, shared.NewNotFoundError(nil, "Session "+sessionID+" not found")
}

func (s *stubProgressService) Advance(sessionID string, req dto.AdvanceRequest) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{SessionID: sessionID, State: "viewing", SlideIndex: 1}, nil
}

func (s *stubProgressService) Revisit(sessionID string, slideIndex int) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{SessionID: sessionID, State: "viewing", SlideIndex: slideIndex}, nil
}

type stubMediaService struct{}

func (s *stubMediaService) UploadLessonImage(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	return &dto.MediaUploadResponse{LessonID: lessonID, Kind: "image"}, nil
}

func (s *stubMediaService) UploadLessonAudio(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	return &dto.MediaUploadResponse{LessonID: lessonID, Kind: "audio"}, nil
}

func (s *stubMediaService) UploadLessonVideo(lessonID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	return &dto.MediaUploadResponse{LessonID: lessonID, Kind: "video"}, nil
}

func (s *stubMediaService) ResolveMedia(key string) (*dto.MediaResolveResponse, error) {
	return &dto.MediaResolveResponse{Key: key, URL: "http://example.org/" + key}, nil
}

func (s *stubMediaService) ListLessonMedia(lessonID string) (*dto.MediaListResponse, error) {
	return &dto.MediaListResponse{LessonID: lessonID}, nil
}

func (s *stubMediaService) DeleteMedia(key string) error {
	return nil
}

func newTestApp() *testApp {
	contentSvc := &stubContentService{
		lessons: map[string]*model.Lesson{
			"module-1-lesson-1": {ID: "module-1-lesson-1", ModuleID: "module-1", Title: "Heart Basics"},
		},
	}

	svc := &HttpService{}
	app := svc.buildApp(
		handlers.NewLessonHandler(contentSvc),
		handlers.NewProgressHandler(&stubProgressService{}),
		handlers.NewMediaHandler(&stubMediaService{}),
	)
	return &testApp{svc: svc, app: app}
}

type testApp struct {
	svc *HttpService
	app *fiber.App
}

func (ta *testApp) request(t *testing.T, method, target string, body io.Reader) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ta.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func TestPreflightReturnsOKWithCORSHeaders(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodOptions, "/api/v1/lessons/module-1-lesson-1", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preflight status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if len(body) != 0 {
		t.Errorf("preflight body = %q, want empty", body)
	}

	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
	}
	for name, want := range headers {
		if got := resp.Header.Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestCORSHeadersOnRegularResponses(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodGet, "/api/v1/lessons", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestGetLessonAnnotatesRequestedID(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodGet, "/api/v1/lessons/module-1-lesson-1", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"id":"module-1-lesson-1"`) {
		t.Errorf("response missing requested lesson id: %s", body)
	}
}

func TestGetUnknownLessonReturns404(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodGet, "/api/v1/lessons/module-9-lesson-9", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestWrongMethodReturns405(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodPut, "/api/v1/lessons", nil)

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodGet, "/api/v1/does-not-exist", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSubmitAnswerRequiresBody(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodPost, "/api/v1/lessons/module-1-lesson-1/tasks/task-1/answer",
		strings.NewReader(`{}`))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSubmitAnswerGrades(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodPost, "/api/v1/lessons/module-1-lesson-1/tasks/task-1/answer",
		strings.NewReader(`{"answer":0}`))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"correct":true`) {
		t.Errorf("expected graded submission, got %s", body)
	}
}

func TestMalformedAssessmentReturns422(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodPost, "/api/v1/lessons/module-1-lesson-1/tasks/task-2/assessment",
		strings.NewReader(`{"answers":[1]}`))

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestStartSessionReturns201(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodPost, "/api/v1/lessons/module-1-lesson-1/sessions", nil)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
}

func TestPing(t *testing.T) {
	ta := newTestApp()

	resp := ta.request(t, http.MethodGet, "/ping", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "pong") {
		t.Errorf("ping body = %s", body)
	}
}
