package assessment

import (
	"errors"
	"testing"

	"github.com/pulseprimer/ecg_api/model"
)

func intPtr(v int) *int { return &v }

func quizTask() model.Task {
	return model.Task{
		ID:   "task-1",
		Type: "quiz",
		XP:   10,
		Content: model.TaskContent{
			Question:      "Which lead faces the inferior wall?",
			Options:       []string{"Lead I", "Lead II", "aVL", "V1"},
			CorrectAnswer: intPtr(1),
			Explanation:   "Leads II, III and aVF look at the inferior wall.",
		},
	}
}

func assessmentTask(questions int, passingScore *int) model.Task {
	qs := make([]model.AssessmentQuestion, questions)
	for i := range qs {
		qs[i] = model.AssessmentQuestion{
			ID:            "q",
			Question:      "?",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: 0,
		}
	}
	return model.Task{
		ID:   "task-final",
		Type: "final-assessment",
		Content: model.TaskContent{
			Questions:    qs,
			PassingScore: passingScore,
		},
	}
}

func TestEvaluateSingleAnswer(t *testing.T) {
	task := quizTask()

	result, err := EvaluateSingleAnswer(task, 1)
	if err != nil {
		t.Fatalf("EvaluateSingleAnswer: %v", err)
	}
	if !result.Correct {
		t.Error("correct index graded as wrong")
	}
	if result.Explanation == "" {
		t.Error("explanation missing from result")
	}

	for _, wrong := range []int{0, 2, 3} {
		result, err := EvaluateSingleAnswer(task, wrong)
		if err != nil {
			t.Fatalf("EvaluateSingleAnswer(%d): %v", wrong, err)
		}
		if result.Correct {
			t.Errorf("index %d graded as correct", wrong)
		}
	}
}

func TestEvaluateSingleAnswerRejectsOutOfRangeIndex(t *testing.T) {
	task := quizTask()
	for _, idx := range []int{-1, 4} {
		if _, err := EvaluateSingleAnswer(task, idx); !errors.Is(err, ErrMalformedSubmission) {
			t.Errorf("index %d: got %v, want ErrMalformedSubmission", idx, err)
		}
	}
}

func TestEvaluateSingleAnswerRejectsUngradableTask(t *testing.T) {
	task := quizTask()
	task.Content.CorrectAnswer = nil

	if _, err := EvaluateSingleAnswer(task, 0); !errors.Is(err, ErrConfiguration) {
		t.Errorf("got %v, want ErrConfiguration", err)
	}
}

func TestEvaluateFinalAssessmentScore(t *testing.T) {
	task := assessmentTask(25, intPtr(80))

	// 20 of 25 correct: answer 0 is correct for every question.
	submitted := make([]int, 25)
	for i := 20; i < 25; i++ {
		submitted[i] = 1
	}

	result, err := EvaluateFinalAssessment(task, submitted)
	if err != nil {
		t.Fatalf("EvaluateFinalAssessment: %v", err)
	}
	if result.ScorePercent != 80 {
		t.Errorf("ScorePercent = %d, want 80", result.ScorePercent)
	}
	if result.CorrectCount != 20 || result.TotalQuestions != 25 {
		t.Errorf("counts = %d/%d, want 20/25", result.CorrectCount, result.TotalQuestions)
	}
	if !result.Passed {
		t.Error("80 >= 80 should pass")
	}
}

func TestEvaluateFinalAssessmentRoundsToNearestPercent(t *testing.T) {
	cases := []struct {
		questions int
		correct   int
		want      int
	}{
		{3, 1, 33},
		{3, 2, 67},
		{6, 1, 17},
		{7, 5, 71},
	}

	for _, tc := range cases {
		task := assessmentTask(tc.questions, intPtr(50))
		submitted := make([]int, tc.questions)
		for i := tc.correct; i < tc.questions; i++ {
			submitted[i] = 1
		}

		result, err := EvaluateFinalAssessment(task, submitted)
		if err != nil {
			t.Fatalf("EvaluateFinalAssessment: %v", err)
		}
		if result.ScorePercent != tc.want {
			t.Errorf("%d/%d: ScorePercent = %d, want %d",
				tc.correct, tc.questions, result.ScorePercent, tc.want)
		}
	}
}

func TestEvaluateFinalAssessmentRejectsAnswerCountMismatch(t *testing.T) {
	task := assessmentTask(25, intPtr(80))

	_, err := EvaluateFinalAssessment(task, make([]int, 24))
	if !errors.Is(err, ErrMalformedSubmission) {
		t.Errorf("got %v, want ErrMalformedSubmission", err)
	}
}

func TestEvaluateFinalAssessmentRejectsMissingPassingScore(t *testing.T) {
	task := assessmentTask(5, nil)

	_, err := EvaluateFinalAssessment(task, make([]int, 5))
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("got %v, want ErrConfiguration", err)
	}
}

func TestPrerequisiteGating(t *testing.T) {
	task := model.Task{
		ID:   "task-b",
		Type: "final-assessment",
		Content: model.TaskContent{
			PrerequisiteTask: "task-a",
		},
	}

	if CanAttemptTask(task, nil) {
		t.Error("gated task attemptable with no completions")
	}
	if !CanAttemptTask(task, []string{"task-a"}) {
		t.Error("gated task blocked despite completed prerequisite")
	}

	if err := CheckPrerequisite(task, []string{"other"}); !errors.Is(err, ErrPrerequisiteNotMet) {
		t.Errorf("got %v, want ErrPrerequisiteNotMet", err)
	}
	if err := CheckPrerequisite(task, []string{"task-a"}); err != nil {
		t.Errorf("unexpected error with satisfied prerequisite: %v", err)
	}
}

func TestUngatedTaskAlwaysAttemptable(t *testing.T) {
	if !CanAttemptTask(quizTask(), nil) {
		t.Error("task without prerequisite reported as gated")
	}
}
