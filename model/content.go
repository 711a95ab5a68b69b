// model/content.go
package model

import (
	"time"
)

// Lesson is a single instructional unit: slides, tasks and metadata.
// JSON keys are the external wire contract and must not change;
// existing mobile/web consumers address lessons by these exact keys.
type Lesson struct {
	ID            string        `json:"id"`
	ModuleID      string        `json:"moduleId"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Order         int           `json:"order"` // position within module
	EstimatedTime int           `json:"estimatedTime"` // in minutes
	Content       LessonContent `json:"content"`
	Tasks         []Task        `json:"tasks"`
	Completed     bool          `json:"completed"`
	Score         *int          `json:"score,omitempty"`
	Attempts      int           `json:"attempts"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type LessonContent struct {
	Type         string           `json:"type"` // text, video, interactive, mixed
	Introduction string           `json:"introduction"`
	Sections     []ContentSection `json:"sections,omitempty"`
	Slides       []Slide          `json:"slides"`
	Summary      string           `json:"summary,omitempty"`
	KeyPoints    []string         `json:"keyPoints,omitempty"`
	Resources    []ResourceLink   `json:"resources,omitempty"`
}

type ContentSection struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	MediaType string `json:"mediaType,omitempty"` // image, video, audio
}

// Slide is one step of lesson content. The Type discriminator selects
// which of the optional payload groups is meaningful; everything else
// stays empty on the wire. Media references are opaque paths resolved
// by the media service, never validated here.
type Slide struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Type    string `json:"type"`

	// Presentation hints
	Layout          string `json:"layout,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	Animation       string `json:"animation,omitempty"`
	Hint            string `json:"hint,omitempty"`

	ImageURL string `json:"imageUrl,omitempty"`
	ImageAlt string `json:"imageAlt,omitempty"`

	Highlights []string `json:"highlights,omitempty"`
	KeyPoints  []string `json:"keyPoints,omitempty"`

	// Quiz / question slides
	Question      string   `json:"question,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`

	// Flashcard slides
	FlashcardFront string `json:"flashcardFront,omitempty"`
	FlashcardBack  string `json:"flashcardBack,omitempty"`

	// Steps slides
	Steps []Step `json:"steps,omitempty"`

	// Tabs / accordion slides
	Tabs           []Panel `json:"tabs,omitempty"`
	AccordionItems []Panel `json:"accordionItems,omitempty"`

	// Audio / video / youtube slides
	AudioURL         string `json:"audioUrl,omitempty"`
	VideoURL         string `json:"videoUrl,omitempty"`
	YoutubeID        string `json:"youtubeId,omitempty"`
	VideoDuration    int    `json:"videoDuration,omitempty"`    // in seconds
	MinimumWatchTime int    `json:"minimumWatchTime,omitempty"` // in seconds
	RequireFullWatch bool   `json:"requireFullWatch,omitempty"`
}

type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Panel is one named content pane of a tabs or accordion slide.
type Panel struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon,omitempty"`
}

// Task is a gradeable activity carrying an XP reward.
type Task struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Type    string      `json:"type"` // quiz, video, case-study, final-assessment
	XP      int         `json:"xp"`
	Content TaskContent `json:"content"`
}

type TaskContent struct {
	// Quiz / case study
	Question          string   `json:"question,omitempty"`
	Options           []string `json:"options,omitempty"`
	CorrectAnswer     *int     `json:"correctAnswer,omitempty"`
	Explanation       string   `json:"explanation,omitempty"`
	Hint              string   `json:"hint,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	CompletionMessage string   `json:"completionMessage,omitempty"`
	RetryMessage      string   `json:"retryMessage,omitempty"`

	// Case study
	PatientInfo *PatientInfo `json:"patientInfo,omitempty"`

	// Video
	VideoURL         string `json:"videoUrl,omitempty"`
	VideoTitle       string `json:"videoTitle,omitempty"`
	VideoDuration    int    `json:"videoDuration,omitempty"`    // in seconds
	MinimumWatchTime int    `json:"minimumWatchTime,omitempty"` // in seconds
	Required         bool   `json:"required,omitempty"`         // full playback mandatory

	// Final assessment
	Questions           []AssessmentQuestion `json:"questions,omitempty"`
	PassingScore        *int                 `json:"passingScore,omitempty"` // percent, 0-100
	TimeLimit           int                  `json:"timeLimit,omitempty"`    // in minutes, advisory
	PrerequisiteTask    string               `json:"prerequisiteTask,omitempty"`
	PrerequisiteMessage string               `json:"prerequisiteMessage,omitempty"`
}

type PatientInfo struct {
	Title    string `json:"title,omitempty"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Symptoms string `json:"symptoms,omitempty"`
	History  string `json:"history,omitempty"`
}

// AssessmentQuestion is one sub-question of a final assessment.
// Each question is binary right/wrong; no partial credit.
type AssessmentQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Hint          string   `json:"hint,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}

type ResourceLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Type        string `json:"type"` // article, video, tool, reference
	Description string `json:"description,omitempty"`
}
