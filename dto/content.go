package dto

// Lesson index DTOs
type LessonMetadata struct {
	ID            string `json:"id"`
	ModuleID      string `json:"moduleId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
	EstimatedTime int    `json:"estimatedTime"`
	SlideCount    int    `json:"slideCount"`
	TaskCount     int    `json:"taskCount"`
}

type LessonIndexResponse struct {
	Lessons      []LessonMetadata `json:"lessons"`
	Modules      []string         `json:"modules"`
	TotalLessons int              `json:"totalLessons"`
	TotalModules int              `json:"totalModules"`
}

// Single-answer task submission
type SubmitAnswerRequest struct {
	Answer         *int     `json:"answer" validate:"required" example:"2"`
	CompletedTasks []string `json:"completedTasks,omitempty"`
}

func (s SubmitAnswerRequest) Validate() error {
	return GetValidator().Struct(s)
}

type AnswerResultResponse struct {
	TaskID      string `json:"taskId"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
	XP          int    `json:"xp"`
}

// Final assessment submission
type FinalAssessmentRequest struct {
	Answers        []int    `json:"answers" validate:"required,min=1"`
	CompletedTasks []string `json:"completedTasks,omitempty"`
}

func (f FinalAssessmentRequest) Validate() error {
	return GetValidator().Struct(f)
}

type AssessmentResultResponse struct {
	TaskID         string `json:"taskId"`
	ScorePercent   int    `json:"scorePercent"`
	CorrectCount   int    `json:"correctCount"`
	TotalQuestions int    `json:"totalQuestions"`
	PassingScore   int    `json:"passingScore"`
	Passed         bool   `json:"passed"`
	XP             int    `json:"xp"`
}
