// Package progression drives a learner through a lesson's slides in
// strict forward order. It is a pure traversal contract: the caller
// supplies elapsed watch time and answer submissions, and owns any
// persistence of the resulting session value.
package progression

import (
	"errors"
	"fmt"

	"github.com/pulseprimer/ecg_api/model"
	"github.com/pulseprimer/ecg_api/shared"
)

var (
	ErrNotStarted = errors.New("session not started")
	ErrOutOfRange = errors.New("slide index out of range")
)

type State string

const (
	StateNotStarted State = "not-started"
	StateViewing    State = "viewing"
	StateGated      State = "gated"
	StateCompleted  State = "completed"
)

// Observation carries the externally measured inputs a gate may need.
// The sequencer never owns a clock; elapsed playback time is injected.
type Observation struct {
	WatchedSeconds  int  `json:"watchedSeconds"`
	AnswerSubmitted bool `json:"answerSubmitted"`
}

// Session is the traversal state for one learner and one lesson.
// SlideIndex is where the learner currently is; Furthest is the highest
// slide whose gate has been reached, so revisiting earlier slides never
// re-arms gates already satisfied.
type Session struct {
	LessonID   string `json:"lessonId"`
	State      State  `json:"state"`
	SlideIndex int    `json:"slideIndex"`
	Furthest   int    `json:"furthest"`
}

func NewSession(lessonID string) Session {
	return Session{
		LessonID: lessonID,
		State:    StateNotStarted,
	}
}

// Start moves NotStarted to Viewing(0). Starting an already started
// session is a no-op.
func Start(s Session) Session {
	if s.State != StateNotStarted {
		return s
	}
	s.State = StateViewing
	s.SlideIndex = 0
	s.Furthest = 0
	return s
}

// GateSatisfied reports whether the slide's advancement condition holds
// under the given observation. Plain content slides gate on nothing;
// media slides gate on watch time; quiz slides gate on any submitted
// answer — correctness is a task-level concern, not a viewing one.
func GateSatisfied(slide model.Slide, obs Observation) bool {
	switch slide.Type {
	case shared.SlideTypeQuiz, shared.SlideTypeQuestion:
		return obs.AnswerSubmitted

	case shared.SlideTypeVideo, shared.SlideTypeAudio, shared.SlideTypeYoutube:
		if slide.RequireFullWatch {
			return obs.WatchedSeconds >= slide.VideoDuration
		}
		if slide.MinimumWatchTime > 0 {
			return obs.WatchedSeconds >= slide.MinimumWatchTime
		}
		return true

	default:
		return true
	}
}

// Advance applies one "next" action. When the current slide's gate is
// not satisfied the session parks in Gated at the same index; a later
// Advance with a sufficient observation releases it. Advancing past the
// final slide completes the session, which is terminal.
func Advance(s Session, slides []model.Slide, obs Observation) (Session, error) {
	switch s.State {
	case StateNotStarted:
		return s, ErrNotStarted
	case StateCompleted:
		return s, nil
	}

	if s.SlideIndex >= len(slides) {
		return s, fmt.Errorf("%w: slide %d of %d", ErrOutOfRange, s.SlideIndex, len(slides))
	}

	// Moving through already-visited ground needs no gate check.
	if s.SlideIndex < s.Furthest {
		s.SlideIndex++
		s.State = StateViewing
		return s, nil
	}

	if !GateSatisfied(slides[s.SlideIndex], obs) {
		s.State = StateGated
		return s, nil
	}

	if s.SlideIndex == len(slides)-1 {
		s.State = StateCompleted
		s.Furthest = len(slides)
		return s, nil
	}

	s.SlideIndex++
	s.Furthest = s.SlideIndex
	s.State = StateViewing
	return s, nil
}

// Revisit jumps back to a previously reached slide. Backward movement
// is always permitted and never changes completion status.
func Revisit(s Session, index int) (Session, error) {
	if s.State == StateNotStarted {
		return s, ErrNotStarted
	}
	if index < 0 || index > s.Furthest {
		return s, fmt.Errorf("%w: slide %d beyond furthest %d", ErrOutOfRange, index, s.Furthest)
	}

	s.SlideIndex = index
	if s.State == StateGated {
		s.State = StateViewing
	}
	return s, nil
}
