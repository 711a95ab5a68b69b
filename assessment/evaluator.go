// Package assessment grades task submissions. All operations are pure
// and deterministic; retrying any of them changes nothing.
package assessment

import (
	"errors"
	"fmt"
	"math"

	"github.com/pulseprimer/ecg_api/model"
)

var (
	// ErrMalformedSubmission marks a structurally invalid submission,
	// e.g. an answer count that differs from the question count. Such
	// submissions are rejected before scoring, never partially graded.
	ErrMalformedSubmission = errors.New("malformed submission")

	// ErrPrerequisiteNotMet marks a submission against a gated task,
	// distinct from a wrong answer so the client can tell "not allowed
	// to try yet" from "tried and failed".
	ErrPrerequisiteNotMet = errors.New("prerequisite not met")

	// ErrConfiguration marks a data-authoring defect on the task, e.g.
	// a final assessment with no passing score. Never defaulted around.
	ErrConfiguration = errors.New("task configuration invalid")
)

type AnswerResult struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

type AssessmentResult struct {
	ScorePercent   int  `json:"scorePercent"`
	CorrectCount   int  `json:"correctCount"`
	TotalQuestions int  `json:"totalQuestions"`
	PassingScore   int  `json:"passingScore"`
	Passed         bool `json:"passed"`
}

// EvaluateSingleAnswer grades one submitted option index against a
// quiz or case-study task.
func EvaluateSingleAnswer(task model.Task, submitted int) (*AnswerResult, error) {
	content := task.Content
	if content.CorrectAnswer == nil || len(content.Options) == 0 {
		return nil, fmt.Errorf("%w: task %s has no gradable answer", ErrConfiguration, task.ID)
	}
	if submitted < 0 || submitted >= len(content.Options) {
		return nil, fmt.Errorf("%w: answer index %d outside %d options",
			ErrMalformedSubmission, submitted, len(content.Options))
	}

	return &AnswerResult{
		Correct:     submitted == *content.CorrectAnswer,
		Explanation: content.Explanation,
	}, nil
}

// EvaluateFinalAssessment grades a full submission against a multi-
// question assessment. The contract guarantees exactly one answer per
// question; anything else is rejected before any scoring happens.
// Score percent is rounded to the nearest integer; each question is
// binary right/wrong.
func EvaluateFinalAssessment(task model.Task, submitted []int) (*AssessmentResult, error) {
	content := task.Content
	if len(content.Questions) == 0 {
		return nil, fmt.Errorf("%w: task %s has no questions", ErrConfiguration, task.ID)
	}
	if content.PassingScore == nil {
		return nil, fmt.Errorf("%w: task %s has no passing score", ErrConfiguration, task.ID)
	}
	if len(submitted) != len(content.Questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions",
			ErrMalformedSubmission, len(submitted), len(content.Questions))
	}

	correct := 0
	for i, question := range content.Questions {
		if submitted[i] == question.CorrectAnswer {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(len(content.Questions)) * 100))

	return &AssessmentResult{
		ScorePercent:   score,
		CorrectCount:   correct,
		TotalQuestions: len(content.Questions),
		PassingScore:   *content.PassingScore,
		Passed:         score >= *content.PassingScore,
	}, nil
}

// CanAttemptTask reports whether the task's prerequisite, if any, has
// been satisfied. Callers must check this before grading; see
// CheckPrerequisite for the rejecting form.
func CanAttemptTask(task model.Task, completedTaskIDs []string) bool {
	prereq := task.Content.PrerequisiteTask
	if prereq == "" {
		return true
	}
	for _, id := range completedTaskIDs {
		if id == prereq {
			return true
		}
	}
	return false
}

// CheckPrerequisite rejects submissions against gated tasks outright.
func CheckPrerequisite(task model.Task, completedTaskIDs []string) error {
	if CanAttemptTask(task, completedTaskIDs) {
		return nil
	}
	return fmt.Errorf("%w: task %s requires %s first",
		ErrPrerequisiteNotMet, task.ID, task.Content.PrerequisiteTask)
}
