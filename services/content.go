package services

import (
	ctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/pulseprimer/ecg_api/assessment"
	"github.com/pulseprimer/ecg_api/dto"
	"github.com/pulseprimer/ecg_api/model"
	"github.com/pulseprimer/ecg_api/shared"
)

// ContentService is the read side of the lesson catalog plus the
// grading entry points. All lesson data comes from the immutable
// registry; the only mutable state here is the cached index.
type ContentService struct {
	context.DefaultService

	registrySvc   *RegistryService
	redisSvc      *RedisService
	monitoringSvc *MonitoringService
}

const CONTENT_SVC = "content_svc"

const (
	lessonIndexCacheKey = "lesson:index"
	lessonIndexCacheTTL = 5 * time.Minute
)

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Start() error {
	svc.registrySvc = svc.Service(REGISTRY_SVC).(*RegistryService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// ==================== LESSON LOOKUP ====================

func (svc *ContentService) GetLessonIndex() (*dto.LessonIndexResponse, error) {
	rctx := ctx.Background()

	var cached dto.LessonIndexResponse
	if err := svc.redisSvc.GetJSON(rctx, lessonIndexCacheKey, &cached); err == nil && cached.TotalLessons > 0 {
		return &cached, nil
	}

	index := svc.buildIndex()

	if err := svc.redisSvc.Set(rctx, lessonIndexCacheKey, index, lessonIndexCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache lesson index")
	}

	return index, nil
}

func (svc *ContentService) buildIndex() *dto.LessonIndexResponse {
	reg := svc.registrySvc.Registry()

	modules := []string{}
	seen := map[string]bool{}
	lessons := make([]dto.LessonMetadata, 0, reg.Len())

	for _, id := range reg.IDs() {
		lesson := reg.Get(id)

		lessons = append(lessons, dto.LessonMetadata{
			ID:            lesson.ID,
			ModuleID:      lesson.ModuleID,
			Title:         lesson.Title,
			Description:   lesson.Description,
			Order:         lesson.Order,
			EstimatedTime: lesson.EstimatedTime,
			SlideCount:    len(lesson.Content.Slides),
			TaskCount:     len(lesson.Tasks),
		})

		if !seen[lesson.ModuleID] {
			seen[lesson.ModuleID] = true
			modules = append(modules, lesson.ModuleID)
		}
	}

	return &dto.LessonIndexResponse{
		Lessons:      lessons,
		Modules:      modules,
		TotalLessons: len(lessons),
		TotalModules: len(modules),
	}
}

func (svc *ContentService) GetLesson(lessonID string) (*model.Lesson, error) {
	lesson := svc.registrySvc.Registry().Get(lessonID)
	svc.monitoringSvc.RecordLessonLookup(lesson != nil)
	if lesson == nil {
		return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Lesson %s not found", lessonID))
	}
	return lesson, nil
}

func (svc *ContentService) GetModuleLessons(moduleID string) ([]model.Lesson, error) {
	lessons := svc.registrySvc.Registry().ByModule(moduleID)
	if len(lessons) == 0 {
		return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Module %s has no lessons", moduleID))
	}
	return lessons, nil
}

// ==================== GRADING ====================

func (svc *ContentService) SubmitTaskAnswer(lessonID, taskID string, req dto.SubmitAnswerRequest) (*dto.AnswerResultResponse, error) {
	task, err := svc.findTask(lessonID, taskID)
	if err != nil {
		return nil, err
	}

	if err := assessment.CheckPrerequisite(*task, req.CompletedTasks); err != nil {
		return nil, svc.prerequisiteError(task, err)
	}

	result, err := assessment.EvaluateSingleAnswer(*task, *req.Answer)
	if err != nil {
		return nil, svc.gradingError(lessonID, taskID, err)
	}

	xp := 0
	if result.Correct {
		xp = task.XP
	}

	return &dto.AnswerResultResponse{
		TaskID:      taskID,
		Correct:     result.Correct,
		Explanation: result.Explanation,
		XP:          xp,
	}, nil
}

func (svc *ContentService) SubmitFinalAssessment(lessonID, taskID string, req dto.FinalAssessmentRequest) (*dto.AssessmentResultResponse, error) {
	task, err := svc.findTask(lessonID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Type != shared.TaskTypeFinalAssessment {
		return nil, shared.NewBadRequestError(nil, fmt.Sprintf("Task %s is not a final assessment", taskID))
	}

	if err := assessment.CheckPrerequisite(*task, req.CompletedTasks); err != nil {
		return nil, svc.prerequisiteError(task, err)
	}

	result, err := assessment.EvaluateFinalAssessment(*task, req.Answers)
	if err != nil {
		svc.monitoringSvc.RecordAssessment("rejected")
		return nil, svc.gradingError(lessonID, taskID, err)
	}

	xp := 0
	if result.Passed {
		xp = task.XP
		svc.monitoringSvc.RecordAssessment("passed")
	} else {
		svc.monitoringSvc.RecordAssessment("failed")
	}

	return &dto.AssessmentResultResponse{
		TaskID:         taskID,
		ScorePercent:   result.ScorePercent,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		PassingScore:   result.PassingScore,
		Passed:         result.Passed,
		XP:             xp,
	}, nil
}

func (svc *ContentService) findTask(lessonID, taskID string) (*model.Task, error) {
	lesson := svc.registrySvc.Registry().Get(lessonID)
	if lesson == nil {
		return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Lesson %s not found", lessonID))
	}

	for i := range lesson.Tasks {
		if lesson.Tasks[i].ID == taskID {
			return &lesson.Tasks[i], nil
		}
	}

	return nil, shared.NewNotFoundError(nil, fmt.Sprintf("Task %s not found in lesson %s", taskID, lessonID))
}

func (svc *ContentService) prerequisiteError(task *model.Task, err error) error {
	message := task.Content.PrerequisiteMessage
	if message == "" {
		message = fmt.Sprintf("Complete task %s first", task.Content.PrerequisiteTask)
	}
	return shared.NewConflictError(err, message)
}

func (svc *ContentService) gradingError(lessonID, taskID string, err error) error {
	switch {
	case errors.Is(err, assessment.ErrMalformedSubmission):
		return shared.NewUnprocessableError(err, "Submission does not match the task structure")
	case errors.Is(err, assessment.ErrConfiguration):
		log.WithFields(log.Fields{
			"lesson_id": lessonID,
			"task_id":   taskID,
		}).WithError(err).Error("Task content is not gradable")
		return shared.NewInternalError(err, "Task is not configured for grading")
	default:
		return shared.NewInternalError(err, "Failed to grade submission")
	}
}
